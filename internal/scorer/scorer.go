package scorer

import (
	"context"
	"fmt"

	"github.com/pmorel/cfp-radar/internal/cfp"
)

// Verdict is the structured relevance judgment for one conference
type Verdict struct {
	Score         int    `json:"score"`
	Justification string `json:"justification"`
}

// Validate checks the verdict against the response contract
func (v Verdict) Validate() error {
	if v.Score < 0 || v.Score > 10 {
		return fmt.Errorf("score %d outside [0, 10]", v.Score)
	}
	return nil
}

// Scorer rates how relevant a conference is for the given abstract
type Scorer interface {
	// Score returns a verdict for exactly one conference. An out-of-contract
	// response from the underlying service is an error.
	Score(ctx context.Context, abstract string, conf cfp.ConferenceCFP) (Verdict, error)
}
