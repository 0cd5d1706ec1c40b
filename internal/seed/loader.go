package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/CynthiaM111/weshare-sub002/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type CategorySvc interface {
	Create(ctx context.Context, input domain.CreateCategoryInput) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type RideSvc interface {
	Create(ctx context.Context, input domain.CreateRideInput) (*domain.Ride, error)
}

type BookingSvc interface {
	Book(ctx context.Context, rideID, userID string) (*domain.Booking, error)
}

type Result struct {
	Categories int
	Users      int
	Rides      int
	Bookings   int
}

// Loader writes fixtures through the services so that seat accounting
// follows the same path as live bookings.
type Loader struct {
	categories CategorySvc
	users      UserSvc
	rides      RideSvc
	bookings   BookingSvc
	now        func() time.Time
	logger     logger.Logger
}

func NewLoader(
	categories CategorySvc,
	users UserSvc,
	rides RideSvc,
	bookings BookingSvc,
	logger logger.Logger,
) *Loader {
	return &Loader{
		categories: categories,
		users:      users,
		rides:      rides,
		bookings:   bookings,
		now:        time.Now,
		logger:     logger,
	}
}

// Load creates missing categories and users, then rides with their bookings.
// Existing categories and users are reused, rides are always new.
func (l *Loader) Load(ctx context.Context, fx *Fixtures) (Result, error) {
	var res Result

	categoryIDs, created, err := l.loadCategories(ctx, fx.Categories)
	if err != nil {
		return res, err
	}
	res.Categories = created

	userIDs, created, err := l.loadUsers(ctx, fx.Users)
	if err != nil {
		return res, err
	}
	res.Users = created

	now := l.now().UTC()
	for i, rf := range fx.Rides {
		ride, err := l.rides.Create(ctx, domain.CreateRideInput{
			CategoryID:    categoryIDs[rf.Category],
			AgencyID:      rf.AgencyID,
			From:          rf.From,
			To:            rf.To,
			DepartureTime: now.Add(rf.DepartsIn),
			Seats:         rf.Seats,
			Price:         rf.Price,
		})
		if err != nil {
			return res, fmt.Errorf("ride %d: %w", i, err)
		}
		res.Rides++

		for _, name := range rf.Riders {
			if _, err = l.bookings.Book(ctx, ride.ID, userIDs[name]); err != nil {
				return res, fmt.Errorf("ride %d: book %s: %w", i, name, err)
			}
			res.Bookings++
		}
	}

	l.logger.Info("fixtures loaded",
		logger.Int("categories", res.Categories),
		logger.Int("users", res.Users),
		logger.Int("rides", res.Rides),
		logger.Int("bookings", res.Bookings),
	)

	return res, nil
}

func (l *Loader) loadCategories(ctx context.Context, fixtures []CategoryFixture) (map[string]string, int, error) {
	existing, err := l.categories.List(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list categories: %w", err)
	}

	ids := make(map[string]string, len(fixtures))
	for _, c := range existing {
		ids[c.Name] = c.ID
	}

	created := 0
	for _, cf := range fixtures {
		if _, ok := ids[cf.Name]; ok {
			continue
		}

		c, err := l.categories.Create(ctx, domain.CreateCategoryInput{
			Name:        cf.Name,
			AverageTime: cf.AverageTime,
		})
		if err != nil {
			return nil, created, fmt.Errorf("category %q: %w", cf.Name, err)
		}
		ids[cf.Name] = c.ID
		created++
	}

	return ids, created, nil
}

func (l *Loader) loadUsers(ctx context.Context, fixtures []UserFixture) (map[string]string, int, error) {
	ids := make(map[string]string, len(fixtures))
	created := 0

	for _, uf := range fixtures {
		u, err := l.users.Create(ctx, domain.CreateUserInput{
			Username:       uf.Username,
			Phone:          uf.Phone,
			TelegramChatID: uf.TelegramChatID,
		})
		switch {
		case err == nil:
			created++
		case errors.Is(err, domain.ErrUsernameTaken):
			if u, err = l.users.GetByUsername(ctx, uf.Username); err != nil {
				return nil, created, fmt.Errorf("user %q: %w", uf.Username, err)
			}
		default:
			return nil, created, fmt.Errorf("user %q: %w", uf.Username, err)
		}
		ids[uf.Username] = u.ID
	}

	return ids, created, nil
}
