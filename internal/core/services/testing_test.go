package services

import (
	"context"

	"github.com/mansurjr/Bulivard/internal/adapters/persistence/models"
	"github.com/mansurjr/Bulivard/internal/config"

	"gorm.io/gorm"
)

// In-memory repository fakes shared by the service tests.

func testConfig() *config.Config {
	return &config.Config{
		AppMode: "dev",
		AppURL:  "http://localhost:3000",
		JWT: config.JWTConfig{
			AccessSecret:     "test-access-secret",
			RefreshSecret:    "test-refresh-secret",
			AccessTokenMins:  15,
			RefreshTokenDays: 7,
		},
	}
}

// ------------------------------------------------------------
// Users
// ------------------------------------------------------------

type memUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[uint]*models.User)}
}

func (r *memUserRepo) Create(_ context.Context, user *models.User) error {
	r.nextID++
	user.ID = r.nextID
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memUserRepo) GetByActivationLink(_ context.Context, link string) (*models.User, error) {
	for _, user := range r.users {
		if link != "" && user.ActivationLink == link {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memUserRepo) GetByResetLink(_ context.Context, link string) (*models.User, error) {
	for _, user := range r.users {
		if link != "" && user.ResetLink == link {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memUserRepo) GetManager(_ context.Context, id uint) (*models.User, error) {
	user, ok := r.users[id]
	if !ok || user.Role != "MANAGER" {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *memUserRepo) Update(_ context.Context, user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) Delete(_ context.Context, id uint) error {
	delete(r.users, id)
	return nil
}

func (r *memUserRepo) List(_ context.Context, role string) ([]*models.User, error) {
	result := make([]*models.User, 0)
	for _, user := range r.users {
		if role == "" || user.Role == role {
			result = append(result, user)
		}
	}
	return result, nil
}

func (r *memUserRepo) ExistsByEmailOrPhone(_ context.Context, email, phone string) (bool, error) {
	for _, user := range r.users {
		if user.Email == email || user.PhoneNumber == phone {
			return true, nil
		}
	}
	return false, nil
}

// ------------------------------------------------------------
// Restaurants
// ------------------------------------------------------------

type memRestaurantRepo struct {
	restaurants map[uint]*models.Restaurant
	nextID      uint
}

func newMemRestaurantRepo() *memRestaurantRepo {
	return &memRestaurantRepo{restaurants: make(map[uint]*models.Restaurant)}
}

func (r *memRestaurantRepo) Create(_ context.Context, restaurant *models.Restaurant) error {
	r.nextID++
	restaurant.ID = r.nextID
	r.restaurants[restaurant.ID] = restaurant
	return nil
}

func (r *memRestaurantRepo) GetByID(_ context.Context, id uint) (*models.Restaurant, error) {
	restaurant, ok := r.restaurants[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return restaurant, nil
}

func (r *memRestaurantRepo) GetByName(_ context.Context, name string) (*models.Restaurant, error) {
	for _, restaurant := range r.restaurants {
		if restaurant.Name == name {
			return restaurant, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memRestaurantRepo) Update(_ context.Context, restaurant *models.Restaurant) error {
	if _, ok := r.restaurants[restaurant.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.restaurants[restaurant.ID] = restaurant
	return nil
}

func (r *memRestaurantRepo) Delete(_ context.Context, id uint) error {
	delete(r.restaurants, id)
	return nil
}

func (r *memRestaurantRepo) List(_ context.Context) ([]*models.Restaurant, error) {
	result := make([]*models.Restaurant, 0)
	for _, restaurant := range r.restaurants {
		result = append(result, restaurant)
	}
	return result, nil
}

func (r *memRestaurantRepo) ListByOwnerID(_ context.Context, ownerID uint) ([]*models.Restaurant, error) {
	result := make([]*models.Restaurant, 0)
	for _, restaurant := range r.restaurants {
		if restaurant.OwnerID == ownerID {
			result = append(result, restaurant)
		}
	}
	return result, nil
}

// ------------------------------------------------------------
// Seats
// ------------------------------------------------------------

type memSeatRepo struct {
	seats  map[uint]*models.Seat
	nextID uint
}

func newMemSeatRepo() *memSeatRepo {
	return &memSeatRepo{seats: make(map[uint]*models.Seat)}
}

func (r *memSeatRepo) Create(_ context.Context, seat *models.Seat) error {
	r.nextID++
	seat.ID = r.nextID
	r.seats[seat.ID] = seat
	return nil
}

func (r *memSeatRepo) GetByID(_ context.Context, id uint) (*models.Seat, error) {
	seat, ok := r.seats[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return seat, nil
}

func (r *memSeatRepo) Update(_ context.Context, seat *models.Seat) error {
	if _, ok := r.seats[seat.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.seats[seat.ID] = seat
	return nil
}

func (r *memSeatRepo) Delete(_ context.Context, id uint) error {
	delete(r.seats, id)
	return nil
}

func (r *memSeatRepo) List(_ context.Context) ([]*models.Seat, error) {
	result := make([]*models.Seat, 0)
	for _, seat := range r.seats {
		result = append(result, seat)
	}
	return result, nil
}

func (r *memSeatRepo) ListByRestaurantExcluding(_ context.Context, restaurantID uint, excludeIDs []uint) ([]*models.Seat, error) {
	excluded := make(map[uint]bool, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = true
	}

	result := make([]*models.Seat, 0)
	for _, seat := range r.seats {
		if seat.RestaurantID == restaurantID && !excluded[seat.ID] {
			result = append(result, seat)
		}
	}
	return result, nil
}

// ------------------------------------------------------------
// Reservations
// ------------------------------------------------------------

type memReservationRepo struct {
	reservations map[uint]*models.Reservation
	nextID       uint
}

func newMemReservationRepo() *memReservationRepo {
	return &memReservationRepo{reservations: make(map[uint]*models.Reservation)}
}

func (r *memReservationRepo) Create(_ context.Context, reservation *models.Reservation) error {
	r.nextID++
	reservation.ID = r.nextID
	r.reservations[reservation.ID] = reservation
	return nil
}

// Reads hand out copies, as a real row scan would: callers mutate their
// copy and persist it through Update.
func (r *memReservationRepo) GetByID(_ context.Context, id uint) (*models.Reservation, error) {
	reservation, ok := r.reservations[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *reservation
	return &clone, nil
}

func (r *memReservationRepo) GetByCustomerID(_ context.Context, customerID uint) (*models.Reservation, error) {
	for _, reservation := range r.reservations {
		if reservation.CustomerID == customerID {
			clone := *reservation
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memReservationRepo) Update(_ context.Context, reservation *models.Reservation) error {
	if _, ok := r.reservations[reservation.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	clone := *reservation
	r.reservations[reservation.ID] = &clone
	return nil
}

func (r *memReservationRepo) Delete(_ context.Context, id uint) error {
	delete(r.reservations, id)
	return nil
}

func (r *memReservationRepo) List(_ context.Context) ([]*models.Reservation, error) {
	result := make([]*models.Reservation, 0)
	for _, reservation := range r.reservations {
		result = append(result, reservation)
	}
	return result, nil
}

func (r *memReservationRepo) ReservedSeatIDs(_ context.Context, date, slot string) ([]uint, error) {
	result := make([]uint, 0)
	for _, reservation := range r.reservations {
		if reservation.Date == date && reservation.Time == slot {
			result = append(result, reservation.SeatID)
		}
	}
	return result, nil
}

func (r *memReservationRepo) ExistsForSlot(_ context.Context, seatID uint, date, slot string) (bool, error) {
	for _, reservation := range r.reservations {
		if reservation.SeatID == seatID && reservation.Date == date && reservation.Time == slot {
			return true, nil
		}
	}
	return false, nil
}

func (r *memReservationRepo) ListByRestaurantAndDate(_ context.Context, restaurantID uint, date string) ([]*models.Reservation, error) {
	result := make([]*models.Reservation, 0)
	for _, reservation := range r.reservations {
		if reservation.RestaurantID == restaurantID && reservation.Date == date {
			result = append(result, reservation)
		}
	}
	return result, nil
}

// ------------------------------------------------------------
// Menus
// ------------------------------------------------------------

type memMenuRepo struct {
	menus  map[uint]*models.Menu
	nextID uint
}

func newMemMenuRepo() *memMenuRepo {
	return &memMenuRepo{menus: make(map[uint]*models.Menu)}
}

func (r *memMenuRepo) Create(_ context.Context, menu *models.Menu) error {
	r.nextID++
	menu.ID = r.nextID
	r.menus[menu.ID] = menu
	return nil
}

func (r *memMenuRepo) GetByID(_ context.Context, id uint) (*models.Menu, error) {
	menu, ok := r.menus[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return menu, nil
}

func (r *memMenuRepo) Update(_ context.Context, menu *models.Menu) error {
	if _, ok := r.menus[menu.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.menus[menu.ID] = menu
	return nil
}

func (r *memMenuRepo) Delete(_ context.Context, id uint) error {
	delete(r.menus, id)
	return nil
}

func (r *memMenuRepo) List(_ context.Context) ([]*models.Menu, error) {
	result := make([]*models.Menu, 0)
	for _, menu := range r.menus {
		result = append(result, menu)
	}
	return result, nil
}

type memMenuImageRepo struct {
	images map[uint]*models.MenuImage
	nextID uint
}

func newMemMenuImageRepo() *memMenuImageRepo {
	return &memMenuImageRepo{images: make(map[uint]*models.MenuImage)}
}

func (r *memMenuImageRepo) Create(_ context.Context, image *models.MenuImage) error {
	r.nextID++
	image.ID = r.nextID
	r.images[image.ID] = image
	return nil
}

func (r *memMenuImageRepo) GetByID(_ context.Context, id uint) (*models.MenuImage, error) {
	image, ok := r.images[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return image, nil
}

func (r *memMenuImageRepo) Update(_ context.Context, image *models.MenuImage) error {
	if _, ok := r.images[image.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.images[image.ID] = image
	return nil
}

func (r *memMenuImageRepo) Delete(_ context.Context, id uint) error {
	delete(r.images, id)
	return nil
}

func (r *memMenuImageRepo) List(_ context.Context) ([]*models.MenuImage, error) {
	result := make([]*models.MenuImage, 0)
	for _, image := range r.images {
		result = append(result, image)
	}
	return result, nil
}

// ------------------------------------------------------------
// Mailer
// ------------------------------------------------------------

type fakeMailer struct {
	activationErr  error
	resetErr       error
	approvedErr    error
	adminsErr      error
	reservationErr error

	activations         []string
	resets              []string
	approved            []string
	adminNotices        int
	reservationNotices  []ReservationSummary
	reservationManagers []string
}

func (m *fakeMailer) SendActivation(user *models.User) error {
	if m.activationErr != nil {
		return m.activationErr
	}
	m.activations = append(m.activations, user.Email)
	return nil
}

func (m *fakeMailer) SendReset(user *models.User) error {
	if m.resetErr != nil {
		return m.resetErr
	}
	m.resets = append(m.resets, user.Email)
	return nil
}

func (m *fakeMailer) NotifyManagerApproved(user *models.User) error {
	if m.approvedErr != nil {
		return m.approvedErr
	}
	m.approved = append(m.approved, user.Email)
	return nil
}

func (m *fakeMailer) NotifyAdminsManagerPending(_ *models.User, _ []*models.User) error {
	if m.adminsErr != nil {
		return m.adminsErr
	}
	m.adminNotices++
	return nil
}

func (m *fakeMailer) NotifyManagerReservationPending(manager *models.User, reservation ReservationSummary) error {
	if m.reservationErr != nil {
		return m.reservationErr
	}
	m.reservationNotices = append(m.reservationNotices, reservation)
	m.reservationManagers = append(m.reservationManagers, manager.Email)
	return nil
}
