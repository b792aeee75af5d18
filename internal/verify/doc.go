// Package verify implements email address verification.
//
// A verification is three independent checks composed with logical AND:
// syntactic format, presence of at least one MX record for the domain, and
// absence from the disposable-domain set. The checks are stateless; the MX
// lookup is the only one that touches the network.
//
// DNS failures are deliberately indistinguishable from "no MX records": any
// lookup error collapses to a false mxOk, never to an error for the caller.
package verify
