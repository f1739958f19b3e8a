package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Papéis de usuário
const (
	RoleOwner   = 1
	RoleManager = 2
	RoleStaff   = 3
)

type User struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Lastname     string     `json:"lastname"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"password,omitempty"`
	Active       bool       `json:"active"`
	RoleID       int        `json:"role_id"`
	AvatarURL    *string    `json:"avatar_url"`
	Deleted      bool       `json:"deleted"`
	DeletedAt    *time.Time `json:"deleted_at"`
	Restaurants  []string   `json:"restaurants"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type UpdateUserRequest struct {
	ID        int     `json:"id"`
	Name      *string `json:"name"`
	Lastname  *string `json:"lastname"`
	Email     *string `json:"email"`
	Active    *bool   `json:"active"`
	RoleID    *int    `json:"role_id"`
	AvatarURL *string `json:"avatar_url"`
	Deleted   *bool   `json:"deleted"`
}

type Claims struct {
	UserID        int
	UserName      string
	UserLastname  string
	UserEmail     string
	UserActive    bool
	UserRoleID    int
	UserAvatarURL *string
	// papel do usuário em cada restaurante (restaurant_id -> papel)
	UserRestaurants map[string]int
	jwt.RegisteredClaims
}

// RestaurantRole retorna o papel do usuário no restaurante
func (c *Claims) RestaurantRole(restaurantID string) (int, bool) {
	role, ok := c.UserRestaurants[restaurantID]
	return role, ok
}

// CanAccessRestaurant indica se o usuário pertence ao restaurante
func (c *Claims) CanAccessRestaurant(restaurantID string) bool {
	_, ok := c.RestaurantRole(restaurantID)
	return ok
}
