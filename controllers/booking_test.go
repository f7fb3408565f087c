package controllers_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/musaada/musaada/auth"
	"github.com/musaada/musaada/auth/authtest"
	"github.com/musaada/musaada/controllers"
	"github.com/musaada/musaada/db"
	"github.com/musaada/musaada/middleware"
	"github.com/musaada/musaada/models"
	"github.com/musaada/musaada/routes"
)

// domainEnv wires the booking and review handlers against an in-memory
// database, with sessions resolved through the usual middleware.
type domainEnv struct {
	testEnv
	db  *gorm.DB
	svc *auth.Service
}

func newDomainEnv(t *testing.T) *domainEnv {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))

	store := authtest.NewMemStore()
	mailer := &authtest.MemMailer{}
	svc := auth.NewService(store, mailer, "http://localhost:3000")

	m := middleware.NewAuth(svc)
	app := fiber.New()
	app.Use(m.Attach())
	routes.SetupBookingRoutes(app, controllers.NewBookingController(gdb, mailer), m)
	routes.SetupReviewRoutes(app, controllers.NewReviewController(gdb, mailer), m)

	return &domainEnv{
		testEnv: testEnv{app: app, store: store, mailer: mailer},
		db:      gdb,
		svc:     svc,
	}
}

// seedUser registers an account and mirrors it into the database so
// preloads and outbound emails see the same record.
func (e *domainEnv) seedUser(t *testing.T, email, name string) uint {
	t.Helper()

	userID, err := e.svc.Register(context.Background(), email, "password123", name)
	require.NoError(t, err)
	require.NoError(t, e.db.Create(&models.User{ID: userID, Email: email, Name: name}).Error)
	return userID
}

func (e *domainEnv) login(t *testing.T, email string) string {
	t.Helper()

	_, token, err := e.svc.Login(context.Background(), email, "password123", "1.2.3.4")
	require.NoError(t, err)
	return fmt.Sprintf("%s=%s", auth.SessionCookie, token)
}

func (e *domainEnv) seedService(t *testing.T) models.Service {
	t.Helper()

	service := models.Service{
		NameAr:        "تنظيف المنزل",
		NameEn:        "Home Cleaning",
		DescriptionAr: "تنظيف شامل",
		DescriptionEn: "Full cleaning",
		Category:      models.CategoryCleaning,
		BasePrice:     50,
		PriceUnit:     "hour",
		IsActive:      true,
	}
	require.NoError(t, e.db.Create(&service).Error)
	return service
}

func (e *domainEnv) seedProvider(t *testing.T, userID, serviceID uint) models.Provider {
	t.Helper()

	provider := models.Provider{
		UserID:      userID,
		ServiceID:   serviceID,
		HourlyRate:  50,
		IsVerified:  true,
		IsAvailable: true,
	}
	require.NoError(t, e.db.Create(&provider).Error)
	return provider
}

func (e *domainEnv) seedBooking(t *testing.T, customerID, providerID, serviceID uint) models.Booking {
	t.Helper()

	booking := models.Booking{
		CustomerID:  customerID,
		ProviderID:  providerID,
		ServiceID:   serviceID,
		BookingDate: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		StartTime:   "10:00",
		Duration:    2,
		Status:      models.BookingConfirmed,
		Address:     "شارع الملك فهد",
		City:        "الرياض",
		TotalPrice:  100,
	}
	require.NoError(t, e.db.Create(&booking).Error)
	return booking
}

// A dead SMTP server must not fail a status update: the transition is
// committed, the counter bumped and the customer notified regardless.
func TestUpdateBookingStatusSwallowsEmailFailure(t *testing.T) {
	env := newDomainEnv(t)

	customerID := env.seedUser(t, "customer@example.com", "Customer")
	providerUserID := env.seedUser(t, "provider@example.com", "Provider")
	cookie := env.login(t, "provider@example.com")

	service := env.seedService(t)
	provider := env.seedProvider(t, providerUserID, service.ID)
	booking := env.seedBooking(t, customerID, provider.ID, service.ID)

	env.mailer.Err = errors.New("smtp down")

	resp := env.request(t, fiber.MethodPatch,
		fmt.Sprintf("/bookings/%d/status", booking.ID),
		fiber.Map{"status": "completed"}, cookie)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, decode(t, resp)["success"])

	var updated models.Booking
	require.NoError(t, env.db.First(&updated, booking.ID).Error)
	assert.Equal(t, models.BookingCompleted, updated.Status)

	var stored models.Provider
	require.NoError(t, env.db.First(&stored, provider.ID).Error)
	assert.Equal(t, 1, stored.CompletedBookings)

	var notifications int64
	env.db.Model(&models.Notification{}).Where("user_id = ?", customerID).Count(&notifications)
	assert.Equal(t, int64(1), notifications)
}

func TestUpdateBookingStatusForbiddenForOtherProvider(t *testing.T) {
	env := newDomainEnv(t)

	customerID := env.seedUser(t, "customer@example.com", "Customer")
	providerUserID := env.seedUser(t, "provider@example.com", "Provider")
	env.seedUser(t, "intruder@example.com", "Intruder")
	cookie := env.login(t, "intruder@example.com")

	service := env.seedService(t)
	provider := env.seedProvider(t, providerUserID, service.ID)
	booking := env.seedBooking(t, customerID, provider.ID, service.ID)

	resp := env.request(t, fiber.MethodPatch,
		fmt.Sprintf("/bookings/%d/status", booking.ID),
		fiber.Map{"status": "completed"}, cookie)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	var unchanged models.Booking
	require.NoError(t, env.db.First(&unchanged, booking.ID).Error)
	assert.Equal(t, models.BookingConfirmed, unchanged.Status)
}

// Each inserted review leaves the provider row holding the arithmetic
// mean of all its ratings and the refreshed review count.
func TestCreateReviewRecomputesProviderRating(t *testing.T) {
	env := newDomainEnv(t)

	providerUserID := env.seedUser(t, "provider@example.com", "Provider")
	customerID := env.seedUser(t, "customer@example.com", "Customer")
	cookie := env.login(t, "customer@example.com")

	service := env.seedService(t)
	provider := env.seedProvider(t, providerUserID, service.ID)
	first := env.seedBooking(t, customerID, provider.ID, service.ID)
	second := env.seedBooking(t, customerID, provider.ID, service.ID)

	resp := env.request(t, fiber.MethodPost, "/reviews", fiber.Map{
		"booking_id":  first.ID,
		"provider_id": provider.ID,
		"service_id":  service.ID,
		"rating":      5,
		"comment":     "خدمة ممتازة",
	}, cookie)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var stored models.Provider
	require.NoError(t, env.db.First(&stored, provider.ID).Error)
	assert.InDelta(t, 5.0, stored.Rating, 0.0001)
	assert.Equal(t, 1, stored.TotalReviews)

	// A failing mailer must not block the insert or the recompute.
	env.mailer.Err = errors.New("smtp down")

	resp = env.request(t, fiber.MethodPost, "/reviews", fiber.Map{
		"booking_id":  second.ID,
		"provider_id": provider.ID,
		"service_id":  service.ID,
		"rating":      4,
	}, cookie)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	require.NoError(t, env.db.First(&stored, provider.ID).Error)
	assert.InDelta(t, 4.5, stored.Rating, 0.0001)
	assert.Equal(t, 2, stored.TotalReviews)

	var notifications int64
	env.db.Model(&models.Notification{}).Where("user_id = ?", providerUserID).Count(&notifications)
	assert.Equal(t, int64(2), notifications)
}
