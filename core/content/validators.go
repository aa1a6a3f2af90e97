package content

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/Perlera89/campus/core"
)

const (
	scoreMin = 0
	scoreMax = 100
)

var (
	scoreNumberText = "la puntuación debe ser un número"
	scoreRangeText  = "la puntuación debe estar entre 0 y 100"
)

// validate coerces and checks the assignment sub-schema.
// An empty score string means "not yet scored" and normalizes to null.
func (na *NewAssignment) validate() error {
	score, err := coerceScore(na.Score)
	if err != nil {
		return err
	}
	na.ScoreValue = score
	return nil
}

func coerceScore(s string) (null.Int, error) {
	s = core.CleanString(s)
	if s == "" {
		return null.Int{}, nil
	}
	score, err := strconv.Atoi(s)
	if err != nil {
		return null.Int{}, core.NewValidationError(
			errors.New(scoreNumberText), core.FieldError{Field: "score", Error: scoreNumberText})
	}
	if score < scoreMin || score > scoreMax {
		return null.Int{}, core.NewValidationError(
			errors.New(scoreRangeText), core.FieldError{Field: "score", Error: scoreRangeText})
	}
	return null.IntFrom(score), nil
}
