// Package account administra os restaurantes e seus membros
package account

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-manager-api/infrastructure/repository"
	"github.com/vfg2006/restaurant-manager-api/internal/domain"
	"github.com/vfg2006/restaurant-manager-api/pkg/apiErrors"
	"github.com/vfg2006/restaurant-manager-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks
type AccountService interface {
	CreateRestaurant(ctx context.Context, ownerID int, restaurant *domain.Restaurant) (*domain.Restaurant, error)
	GetRestaurant(ctx context.Context, id string) (*domain.Restaurant, error)
	UpdateRestaurant(ctx context.Context, id string, request *domain.UpdateRestaurantRequest) (*domain.Restaurant, error)
	ListRestaurants(ctx context.Context, userID int) ([]*domain.Restaurant, error)
	ListMembers(ctx context.Context, restaurantID string) ([]*domain.RestaurantMember, error)
	AddMember(ctx context.Context, member *domain.RestaurantMember) error
	RemoveMember(ctx context.Context, restaurantID string, userID int) error
}

type Service struct {
	restaurantRepository repository.RestaurantRepository
	userRepository       repository.UserRepository
}

func NewService(
	restaurantRepository repository.RestaurantRepository,
	userRepository repository.UserRepository,
) AccountService {
	return &Service{
		restaurantRepository: restaurantRepository,
		userRepository:       userRepository,
	}
}

// CreateRestaurant grava o restaurante com um código público curto e torna o criador proprietário
func (s *Service) CreateRestaurant(ctx context.Context, ownerID int, restaurant *domain.Restaurant) (*domain.Restaurant, error) {
	restaurant.Name = strings.TrimSpace(restaurant.Name)
	if restaurant.Name == "" {
		return nil, NewAccountError(ErrInvalidSettings, apiErrors.ErrMissingRequiredData, "Nome do restaurante é obrigatório")
	}

	restaurant.ApplyDefaults()
	if err := validateSettings(restaurant); err != nil {
		return nil, err
	}

	code, err := utils.GenerateID()
	if err != nil {
		return nil, NewAccountError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar código do restaurante")
	}
	restaurant.ID = utils.NewID()
	restaurant.Code = code

	if err := s.restaurantRepository.Create(ctx, restaurant, ownerID); err != nil {
		logrus.WithError(err).Error("Error creating restaurant on the repository")
		return nil, NewAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao criar restaurante")
	}

	logrus.WithFields(logrus.Fields{
		"restaurant_id": restaurant.ID,
		"code":          restaurant.Code,
		"owner_id":      ownerID,
	}).Info("Restaurante criado")

	return restaurant, nil
}

func (s *Service) GetRestaurant(ctx context.Context, id string) (*domain.Restaurant, error) {
	if id == "" {
		return nil, ErrRestaurantIDRequired
	}

	restaurant, err := s.restaurantRepository.GetByID(ctx, id)
	if err != nil {
		logrus.WithError(err).Error("Error getting restaurant by id on the repository")
		return nil, NewAccountErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Erro ao buscar restaurante no banco de dados")
	}
	if restaurant == nil {
		return nil, NewAccountErrorWithID(ErrRestaurantNotFound, apiErrors.ErrResourceNotFound, id, "Restaurante não encontrado")
	}

	restaurant.ApplyDefaults()
	return restaurant, nil
}

// UpdateRestaurant aplica apenas os campos informados
func (s *Service) UpdateRestaurant(ctx context.Context, id string, request *domain.UpdateRestaurantRequest) (*domain.Restaurant, error) {
	restaurant, err := s.GetRestaurant(ctx, id)
	if err != nil {
		return nil, err
	}

	if request.Name != nil {
		name := strings.TrimSpace(*request.Name)
		if name == "" {
			return nil, NewAccountErrorWithID(ErrInvalidSettings, apiErrors.ErrMissingRequiredData, id, "Nome do restaurante é obrigatório")
		}
		restaurant.Name = name
	}
	if request.Document != nil {
		restaurant.Document = request.Document
	}
	if request.Address != nil {
		restaurant.Address = request.Address
	}
	if request.Phone != nil {
		restaurant.Phone = request.Phone
	}
	if request.Email != nil {
		restaurant.Email = request.Email
	}
	if request.TaxRate != nil {
		restaurant.TaxRate = *request.TaxRate
	}
	if request.CardFeeRate != nil {
		restaurant.CardFeeRate = *request.CardFeeRate
	}
	if request.TargetCMVPercentage != nil {
		restaurant.TargetCMVPercentage = *request.TargetCMVPercentage
	}

	if err := validateSettings(restaurant); err != nil {
		return nil, err
	}

	if err := s.restaurantRepository.Update(ctx, restaurant); err != nil {
		logrus.WithError(err).Error("Error updating restaurant on the repository")
		return nil, NewAccountErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao atualizar restaurante no banco de dados")
	}

	return restaurant, nil
}

func (s *Service) ListRestaurants(ctx context.Context, userID int) ([]*domain.Restaurant, error) {
	restaurants, err := s.restaurantRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, NewAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar restaurantes no banco de dados")
	}

	for _, restaurant := range restaurants {
		restaurant.ApplyDefaults()
	}
	return restaurants, nil
}

func (s *Service) ListMembers(ctx context.Context, restaurantID string) ([]*domain.RestaurantMember, error) {
	members, err := s.restaurantRepository.ListMembers(ctx, restaurantID)
	if err != nil {
		return nil, NewAccountErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, restaurantID, "Falha ao listar membros")
	}
	return members, nil
}

func (s *Service) AddMember(ctx context.Context, member *domain.RestaurantMember) error {
	if member.Role == 0 {
		member.Role = domain.RoleStaff
	}
	if member.Role < domain.RoleOwner || member.Role > domain.RoleStaff {
		return NewAccountErrorWithID(ErrInvalidRole, apiErrors.ErrInvalidRequest, member.RestaurantID, fmt.Sprintf("Papel %d inválido", member.Role))
	}

	if _, err := s.GetRestaurant(ctx, member.RestaurantID); err != nil {
		return err
	}

	user, err := s.userRepository.GetUserByID(ctx, member.UserID)
	if err != nil {
		return NewAccountErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, member.RestaurantID, "Erro ao buscar usuário")
	}
	if user == nil || user.Deleted {
		return NewAccountErrorWithID(ErrUserNotFound, apiErrors.ErrUserNotFound, member.RestaurantID, fmt.Sprintf("Usuário %d não encontrado", member.UserID))
	}

	if err := s.restaurantRepository.AddMember(ctx, member); err != nil {
		logrus.WithError(err).Error("Error adding member on the repository")
		return NewAccountErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, member.RestaurantID, "Falha ao adicionar membro")
	}

	logrus.WithFields(logrus.Fields{
		"restaurant_id": member.RestaurantID,
		"user_id":       member.UserID,
		"role":          member.Role,
	}).Info("Membro adicionado")

	return nil
}

// RemoveMember não permite remover o último proprietário
func (s *Service) RemoveMember(ctx context.Context, restaurantID string, userID int) error {
	members, err := s.ListMembers(ctx, restaurantID)
	if err != nil {
		return err
	}

	owners := 0
	var target *domain.RestaurantMember
	for _, member := range members {
		if member.Role == domain.RoleOwner {
			owners++
		}
		if member.UserID == userID {
			target = member
		}
	}

	if target == nil {
		return NewAccountErrorWithID(ErrUserNotFound, apiErrors.ErrResourceNotFound, restaurantID, fmt.Sprintf("Usuário %d não é membro", userID))
	}
	if target.Role == domain.RoleOwner && owners <= 1 {
		return NewAccountErrorWithID(ErrLastOwner, apiErrors.ErrBusinessRule, restaurantID, "O restaurante precisa de ao menos um proprietário")
	}

	if err := s.restaurantRepository.RemoveMember(ctx, restaurantID, userID); err != nil {
		return NewAccountErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, restaurantID, "Falha ao remover membro")
	}

	return nil
}

func validateSettings(restaurant *domain.Restaurant) error {
	if restaurant.TaxRate < 0 || restaurant.TaxRate >= 1 {
		return NewAccountErrorWithID(ErrInvalidSettings, apiErrors.ErrInvalidRequest, restaurant.ID, "Alíquota de impostos deve estar entre 0 e 1")
	}
	if restaurant.CardFeeRate < 0 || restaurant.CardFeeRate >= 1 {
		return NewAccountErrorWithID(ErrInvalidSettings, apiErrors.ErrInvalidRequest, restaurant.ID, "Taxa de cartão deve estar entre 0 e 1")
	}
	if restaurant.TargetCMVPercentage <= 0 || restaurant.TargetCMVPercentage > 100 {
		return NewAccountErrorWithID(ErrInvalidSettings, apiErrors.ErrInvalidRequest, restaurant.ID, "Meta de CMV deve estar entre 0 e 100")
	}
	return nil
}
