package line

// SignatureHeader carries the channel signature of a webhook request.
const SignatureHeader = "X-Line-Signature"

// ChannelSignatureVerifier checks webhook signatures against a channel secret.
type ChannelSignatureVerifier struct {
	secret string
}

// NewChannelSignatureVerifier creates a verifier for the channel secret.
func NewChannelSignatureVerifier(secret string) *ChannelSignatureVerifier {
	return &ChannelSignatureVerifier{secret: secret}
}

// Verify returns ErrNotSupported: webhook signature verification is not implemented.
func (v *ChannelSignatureVerifier) Verify([]byte, string) error {
	return ErrNotSupported
}
