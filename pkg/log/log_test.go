package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Equal(t, "", GetCorrelationID(context.Background()))
}

func TestWithFieldsFiltersInDevelopment(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	SetupTestLogger()

	base := L.(*logger)
	filtered := L.WithFields(Fields{"irrelevant": 1}).(*logger)
	assert.Same(t, base, filtered)

	kept := L.WithFields(Fields{"restaurant_id": "r1", "irrelevant": 1}).(*logger)
	assert.Equal(t, "r1", kept.entry.Data["restaurant_id"])
	assert.NotContains(t, kept.entry.Data, "irrelevant")
}

func TestWithFieldsKeepsAllInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	SetupTestLogger()

	kept := L.WithFields(Fields{"irrelevant": 1}).(*logger)
	assert.Equal(t, 1, kept.entry.Data["irrelevant"])
}
