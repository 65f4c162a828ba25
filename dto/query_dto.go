package dto

// SaveQueryResponse carries the short digest a persisted rule tree is
// addressed by. The client puts it in the q= query parameter.
type SaveQueryResponse struct {
	Digest string `json:"digest"`
}
