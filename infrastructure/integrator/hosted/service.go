package hosted

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	hosteddomain "github.com/vfg2006/restaurant-manager-api/infrastructure/integrator/hosted/domain"
	"github.com/vfg2006/restaurant-manager-api/infrastructure/integrator/hosted/hostedclient"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks
type HostedIntegrator interface {
	Snapshot(ctx context.Context, restaurantID string) (*hosteddomain.Snapshot, error)
	CheckConnection(ctx context.Context) (bool, error)
}

type HostedService struct {
	Client hostedclient.Client
}

func New(client hostedclient.Client) HostedIntegrator {
	return &HostedService{
		Client: client,
	}
}

// Snapshot lê todas as tabelas de um restaurante no backend hospedado
func (s *HostedService) Snapshot(ctx context.Context, restaurantID string) (*hosteddomain.Snapshot, error) {
	byRestaurant := url.Values{"restaurant_id": {"eq." + restaurantID}}
	snapshot := &hosteddomain.Snapshot{}

	var restaurants []hosteddomain.RestaurantRow
	if err := s.fetch(ctx, hosteddomain.TableRestaurants, url.Values{"id": {"eq." + restaurantID}}, &restaurants); err != nil {
		return nil, err
	}
	if len(restaurants) > 0 {
		snapshot.Restaurant = &restaurants[0]
	}

	if err := s.fetch(ctx, hosteddomain.TableCashFlow, byRestaurant, &snapshot.CashFlow); err != nil {
		return nil, err
	}
	if err := s.fetch(ctx, hosteddomain.TableGoals, byRestaurant, &snapshot.Goals); err != nil {
		return nil, err
	}
	if err := s.fetch(ctx, hosteddomain.TableAchievements, byRestaurant, &snapshot.Achievements); err != nil {
		return nil, err
	}
	if err := s.fetch(ctx, hosteddomain.TableInventory, byRestaurant, &snapshot.Inventory); err != nil {
		return nil, err
	}
	if err := s.fetch(ctx, hosteddomain.TableRecipes, byRestaurant, &snapshot.Recipes); err != nil {
		return nil, err
	}

	if len(snapshot.Recipes) > 0 {
		ids := make([]string, 0, len(snapshot.Recipes))
		for _, r := range snapshot.Recipes {
			ids = append(ids, r.ID)
		}
		filter := url.Values{"recipe_id": {"in.(" + strings.Join(ids, ",") + ")"}}
		if err := s.fetch(ctx, hosteddomain.TableRecipeIngredients, filter, &snapshot.RecipeIngredients); err != nil {
			return nil, err
		}
	}

	if err := s.fetch(ctx, hosteddomain.TableRestaurantMembers, byRestaurant, &snapshot.Members); err != nil {
		return nil, err
	}

	if len(snapshot.Members) > 0 {
		ids := make([]string, 0, len(snapshot.Members))
		for _, m := range snapshot.Members {
			ids = append(ids, m.UserID)
		}
		filter := url.Values{"id": {"in.(" + strings.Join(ids, ",") + ")"}}
		if err := s.fetch(ctx, hosteddomain.TableProfiles, filter, &snapshot.Profiles); err != nil {
			return nil, err
		}
	}

	logrus.WithFields(logrus.Fields{
		"restaurant_id": restaurantID,
		"cash_flow":     len(snapshot.CashFlow),
		"goals":         len(snapshot.Goals),
		"inventory":     len(snapshot.Inventory),
		"recipes":       len(snapshot.Recipes),
		"members":       len(snapshot.Members),
	}).Info("Snapshot do backend hospedado obtido")

	return snapshot, nil
}

// CheckConnection faz uma leitura mínima para validar URL e chave
func (s *HostedService) CheckConnection(ctx context.Context) (bool, error) {
	_, err := s.Client.FetchRows(ctx, hosteddomain.TableRestaurants, url.Values{"limit": {"1"}})
	if err != nil {
		return false, err
	}

	return true, nil
}

func (s *HostedService) fetch(ctx context.Context, table string, filters url.Values, out interface{}) error {
	rows, err := s.Client.FetchRows(ctx, table, filters)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("erro ao serializar linhas de %s: %w", table, err)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("erro ao decodificar linhas de %s: %w", table, err)
	}

	return nil
}
