package models

import (
	"time"

	"gorm.io/gorm"
)

// ============================================================
// Accounts
// ============================================================

// User represents users table
type User struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	FullName       string         `gorm:"size:100;not null" json:"full_name"`
	Email          string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	PhoneNumber    string         `gorm:"uniqueIndex;size:20;not null" json:"phone_number"`
	Password       string         `gorm:"size:255;not null" json:"-"`
	Role           string         `gorm:"size:20;default:'CUSTOMER'" json:"role"`
	IsActive       bool           `gorm:"default:false" json:"is_active"`
	ActivationLink string         `gorm:"size:64;index" json:"-"`
	ResetLink      string         `gorm:"size:64;index" json:"-"`
	Token          string         `gorm:"size:255" json:"-"` // fingerprint of the active refresh token
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse DTO
type UserResponse struct {
	ID          uint      `json:"id"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	Role        string    `json:"role"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:          u.ID,
		FullName:    u.FullName,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Role:        u.Role,
		IsActive:    u.IsActive,
		CreatedAt:   u.CreatedAt,
	}
}

// ============================================================
// Restaurants & seats
// ============================================================

// Restaurant represents restaurants table
type Restaurant struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"uniqueIndex;size:100;not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	OwnerID     uint           `gorm:"not null;index" json:"owner_id"`
	OpenTime    string         `gorm:"size:5" json:"open_time"`
	CloseTime   string         `gorm:"size:5" json:"close_time"`
	Rating      int            `gorm:"type:smallint" json:"rating"`
	Social      string         `gorm:"size:200" json:"social"`
	Contact     string         `gorm:"size:100" json:"contact"`
	Location    string         `gorm:"size:200" json:"location"`
	Longitude   string         `gorm:"size:30" json:"long"`
	Latitude    string         `gorm:"size:30" json:"lat"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Owner *User `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}

// Seat represents seats table
type Seat struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	RestaurantID uint   `gorm:"not null;index" json:"restaurant_id"`
	Capacity     int    `gorm:"not null" json:"capacity"`
	Price        string `gorm:"size:20;not null" json:"price"`
	IsVip        bool   `gorm:"default:false" json:"is_vip"`

	Restaurant *Restaurant `gorm:"foreignKey:RestaurantID" json:"restaurant,omitempty"`
}

func (Seat) TableName() string {
	return "seats"
}

// ============================================================
// Reservations
// ============================================================

// Reservation represents reservations table.
// The unique index over (seat_id, date, time) is the data-layer guard
// against double-booking a seat for the same slot. Deletes are hard
// deletes: a soft-deleted row would keep occupying the index and the
// freed slot could never be rebooked.
type Reservation struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	SeatID       uint      `gorm:"not null;uniqueIndex:idx_seat_slot" json:"seat_id"`
	RestaurantID uint      `gorm:"not null;index" json:"restaurant_id"`
	CustomerID   uint      `gorm:"not null;index" json:"customer_id"`
	Date         string    `gorm:"size:10;not null;uniqueIndex:idx_seat_slot" json:"date"`
	Time         string    `gorm:"size:5;not null;uniqueIndex:idx_seat_slot" json:"time"`
	GuestCount   int       `gorm:"not null" json:"guest_count"`
	IsChecked    bool      `gorm:"default:false" json:"is_checked"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Seat       *Seat       `gorm:"foreignKey:SeatID" json:"seat,omitempty"`
	Restaurant *Restaurant `gorm:"foreignKey:RestaurantID" json:"restaurant,omitempty"`
	Customer   *User       `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
}

func (Reservation) TableName() string {
	return "reservations"
}

// ============================================================
// Menus
// ============================================================

// Menu represents menus table
type Menu struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	RestaurantID uint           `gorm:"not null;index" json:"restaurant_id"`
	Name         string         `gorm:"size:100;not null" json:"name"`
	Description  string         `gorm:"type:text" json:"description"`
	Price        string         `gorm:"size:20;not null" json:"price"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	Restaurant *Restaurant `gorm:"foreignKey:RestaurantID" json:"restaurant,omitempty"`
	Images     []MenuImage `gorm:"foreignKey:MenuID" json:"images,omitempty"`
}

func (Menu) TableName() string {
	return "menus"
}

// MenuImage represents menu_images table
type MenuImage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	MenuID    uint      `gorm:"not null;index" json:"menu_id"`
	URL       string    `gorm:"size:255;not null" json:"url"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Menu *Menu `gorm:"foreignKey:MenuID" json:"menu,omitempty"`
}

func (MenuImage) TableName() string {
	return "menu_images"
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Restaurant{},
		&Seat{},
		&Reservation{},
		&Menu{},
		&MenuImage{},
	)
}
