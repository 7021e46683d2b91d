package stats

import "errors"

// ErrRatingOutOfRange is returned for rating values outside [1,5].
var ErrRatingOutOfRange = errors.New("stats: rating must be between 1 and 5")

// Rating is the accumulator state owned by a rated entity.
type Rating struct {
	Mean  float64 `json:"mean"`
	Total int64   `json:"total"`
}

// ApplyRating folds one new rating into the running mean. It is a streaming
// mean: exact up to float rounding, with no correction pass and no
// retraction. The returned Total is always current.Total + 1.
func ApplyRating(current Rating, value int) (Rating, error) {
	if value < 1 || value > 5 {
		return Rating{}, ErrRatingOutOfRange
	}
	total := current.Total + 1
	mean := (current.Mean*float64(current.Total) + float64(value)) / float64(total)
	return Rating{Mean: mean, Total: total}, nil
}
