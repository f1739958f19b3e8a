package hosted

import (
	"context"
	"errors"
	"net/url"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/restaurant-manager-api/infrastructure/integrator/hosted/mocks"
	"go.uber.org/mock/gomock"
)

func raw(items ...string) []jsoniter.RawMessage {
	rows := make([]jsoniter.RawMessage, 0, len(items))
	for _, item := range items {
		rows = append(rows, jsoniter.RawMessage(item))
	}
	return rows
}

func TestHostedService_Snapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	service := New(client)
	ctx := context.Background()
	byRestaurant := url.Values{"restaurant_id": {"eq.rest-1"}}

	client.EXPECT().FetchRows(ctx, "restaurants", url.Values{"id": {"eq.rest-1"}}).
		Return(raw(`{"id":"rest-1","name":"Cantina"}`), nil)
	client.EXPECT().FetchRows(ctx, "cash_flow", byRestaurant).
		Return(raw(`{"id":"c1","restaurant_id":"rest-1","date":"2024-03-01","description":"Vendas","amount":120.5,"type":"income"}`), nil)
	client.EXPECT().FetchRows(ctx, "goals", byRestaurant).Return(raw(), nil)
	client.EXPECT().FetchRows(ctx, "achievements", byRestaurant).Return(raw(), nil)
	client.EXPECT().FetchRows(ctx, "inventory", byRestaurant).
		Return(raw(`{"id":"i1","restaurant_id":"rest-1","name":"Arroz","quantity":10,"min_quantity":2,"unit_cost":5}`), nil)
	client.EXPECT().FetchRows(ctx, "recipes", byRestaurant).
		Return(raw(`{"id":"r1","restaurant_id":"rest-1","name":"Risoto","yield":4}`, `{"id":"r2","restaurant_id":"rest-1","name":"Salada","yield":2}`), nil)
	client.EXPECT().FetchRows(ctx, "recipe_ingredients", url.Values{"recipe_id": {"in.(r1,r2)"}}).
		Return(raw(`{"id":"ri1","recipe_id":"r1","name":"Arroz","quantity":0.5,"unit":"kg","unit_cost":5}`), nil)
	client.EXPECT().FetchRows(ctx, "restaurant_members", byRestaurant).
		Return(raw(`{"restaurant_id":"rest-1","user_id":"u-1","role":"owner"}`), nil)
	client.EXPECT().FetchRows(ctx, "profiles", url.Values{"id": {"in.(u-1)"}}).
		Return(raw(`{"id":"u-1","full_name":"Ana Souza","email":"ana@example.com"}`), nil)

	snapshot, err := service.Snapshot(ctx, "rest-1")
	require.NoError(t, err)

	require.NotNil(t, snapshot.Restaurant)
	assert.Equal(t, "Cantina", snapshot.Restaurant.Name)
	require.Len(t, snapshot.CashFlow, 1)
	assert.Equal(t, 120.5, snapshot.CashFlow[0].Amount)
	assert.Len(t, snapshot.Recipes, 2)
	assert.Len(t, snapshot.RecipeIngredients, 1)
	assert.Len(t, snapshot.Inventory, 1)
	require.Len(t, snapshot.Profiles, 1)
	assert.Equal(t, "ana@example.com", snapshot.Profiles[0].Email)
}

func TestHostedService_SnapshotPropagatesError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	service := New(client)

	client.EXPECT().FetchRows(gomock.Any(), "restaurants", gomock.Any()).Return(nil, errors.New("timeout"))

	_, err := service.Snapshot(context.Background(), "rest-1")
	assert.EqualError(t, err, "timeout")
}

func TestHostedService_CheckConnection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	service := New(client)

	client.EXPECT().FetchRows(gomock.Any(), "restaurants", gomock.Any()).Return(raw(), nil)

	ok, err := service.CheckConnection(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
}
