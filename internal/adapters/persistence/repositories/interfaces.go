package repositories

import (
	"context"

	"github.com/mansurjr/Bulivard/internal/adapters/persistence/models"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByActivationLink(ctx context.Context, link string) (*models.User, error)
	GetByResetLink(ctx context.Context, link string) (*models.User, error)
	GetManager(ctx context.Context, id uint) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, role string) ([]*models.User, error)
	ExistsByEmailOrPhone(ctx context.Context, email, phone string) (bool, error)
}

// RestaurantRepository defines restaurant repository interface
type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *models.Restaurant) error
	GetByID(ctx context.Context, id uint) (*models.Restaurant, error)
	GetByName(ctx context.Context, name string) (*models.Restaurant, error)
	Update(ctx context.Context, restaurant *models.Restaurant) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]*models.Restaurant, error)
	ListByOwnerID(ctx context.Context, ownerID uint) ([]*models.Restaurant, error)
}

// SeatRepository defines seat repository interface
type SeatRepository interface {
	Create(ctx context.Context, seat *models.Seat) error
	GetByID(ctx context.Context, id uint) (*models.Seat, error)
	Update(ctx context.Context, seat *models.Seat) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]*models.Seat, error)
	ListByRestaurantExcluding(ctx context.Context, restaurantID uint, excludeIDs []uint) ([]*models.Seat, error)
}

// ReservationRepository defines reservation repository interface
type ReservationRepository interface {
	Create(ctx context.Context, reservation *models.Reservation) error
	GetByID(ctx context.Context, id uint) (*models.Reservation, error)
	GetByCustomerID(ctx context.Context, customerID uint) (*models.Reservation, error)
	Update(ctx context.Context, reservation *models.Reservation) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]*models.Reservation, error)
	ReservedSeatIDs(ctx context.Context, date, time string) ([]uint, error)
	ExistsForSlot(ctx context.Context, seatID uint, date, time string) (bool, error)
	ListByRestaurantAndDate(ctx context.Context, restaurantID uint, date string) ([]*models.Reservation, error)
}

// MenuRepository defines menu repository interface
type MenuRepository interface {
	Create(ctx context.Context, menu *models.Menu) error
	GetByID(ctx context.Context, id uint) (*models.Menu, error)
	Update(ctx context.Context, menu *models.Menu) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]*models.Menu, error)
}

// MenuImageRepository defines menu image repository interface
type MenuImageRepository interface {
	Create(ctx context.Context, image *models.MenuImage) error
	GetByID(ctx context.Context, id uint) (*models.MenuImage, error)
	Update(ctx context.Context, image *models.MenuImage) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]*models.MenuImage, error)
}
