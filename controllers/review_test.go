package controllers

import (
	"testing"

	"github.com/musaada/musaada/models"
	"github.com/stretchr/testify/assert"
)

func TestAverageRating(t *testing.T) {
	assert.Equal(t, 0.0, averageRating(nil))

	reviews := []models.Review{{Rating: 5}}
	assert.Equal(t, 5.0, averageRating(reviews))

	reviews = append(reviews, models.Review{Rating: 4}, models.Review{Rating: 3})
	assert.Equal(t, 4.0, averageRating(reviews))

	reviews = append(reviews, models.Review{Rating: 1})
	assert.InDelta(t, 3.25, averageRating(reviews), 0.0001)
}
