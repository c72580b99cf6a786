// Command seed fills a development database with fake users, skills, swaps and feedback.
// Everything goes through the service layer, so the data obeys the same rules as the API.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/YusovID/skillswap/internal/auth"
	"github.com/YusovID/skillswap/internal/cache"
	"github.com/YusovID/skillswap/internal/config"
	"github.com/YusovID/skillswap/internal/domain"
	"github.com/YusovID/skillswap/internal/repository/postgres"
	"github.com/YusovID/skillswap/internal/service"
	"github.com/YusovID/skillswap/pkg/api"
	"github.com/YusovID/skillswap/pkg/logger/sl"
	"github.com/YusovID/skillswap/pkg/logger/slogpretty"
	"github.com/brianvoe/gofakeit/v6"
)

const seedPassword = "password123"

var skillNames = map[string][]string{
	"Technology": {"Go", "Python", "React", "Kubernetes", "SQL", "Linux administration"},
	"Language":   {"Spanish", "French", "Japanese", "German", "Portuguese", "Mandarin"},
	"Music":      {"Guitar", "Piano", "Singing", "Drums", "Music theory"},
	"Art":        {"Watercolor", "Sketching", "Photography", "Pottery", "Calligraphy"},
	"Cooking":    {"Baking bread", "Italian cuisine", "Knife skills", "Vegan cooking"},
	"Fitness":    {"Yoga", "Running", "Rock climbing", "Weight training"},
	"Business":   {"Public speaking", "Bookkeeping", "Negotiation", "Marketing"},
	"Education":  {"Math tutoring", "Essay writing", "Chess", "Study techniques"},
}

type options struct {
	users int
	swaps int
	seed  int64
}

func main() {
	var opts options

	flag.IntVar(&opts.users, "users", 20, "Number of users to create")
	flag.IntVar(&opts.swaps, "swaps", 40, "Number of swap requests to create")
	flag.Int64Var(&opts.seed, "seed", 0, "Random seed (0 picks one from the clock)")
	flag.Parse()

	if opts.seed == 0 {
		opts.seed = time.Now().UnixNano()
	}

	if err := run(context.Background(), opts); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options) error {
	cfg := config.MustLoad()
	log := slogpretty.SetupLogger(cfg.Env)

	db, err := postgres.NewDB(cfg.Postgres, log)
	if err != nil {
		return fmt.Errorf("failed to init db: %w", err)
	}
	defer db.Close()

	hasher, err := auth.NewPasswordHasher(cfg.Auth.BcryptCost)
	if err != nil {
		return fmt.Errorf("failed to init password hasher: %w", err)
	}

	userRepo := postgres.NewUserRepository(db.DB(), log)
	skillRepo := postgres.NewSkillRepository(db.DB(), log)
	swapRepo := postgres.NewSwapRepository(db.DB(), log)
	feedbackRepo := postgres.NewFeedbackRepository(db.DB(), log)

	s := &seeder{
		log:      log,
		faker:    gofakeit.New(opts.seed),
		users:    service.NewUserService(log, userRepo, hasher, auth.NewTokenManager(cfg.Auth), cache.Noop{}),
		skills:   service.NewSkillService(log, skillRepo, cache.Noop{}),
		swaps:    service.NewSwapService(db.DB(), log, swapRepo, skillRepo),
		feedback: service.NewFeedbackService(db.DB(), log, feedbackRepo, swapRepo, userRepo),
	}

	log.Info("seeding database", slog.Int("users", opts.users), slog.Int("swaps", opts.swaps), slog.Int64("seed", opts.seed))

	return s.seed(ctx, opts)
}

type seeder struct {
	log      *slog.Logger
	faker    *gofakeit.Faker
	users    service.UserService
	skills   service.SkillService
	swaps    service.SwapService
	feedback service.FeedbackService
}

// offered maps a user id to the ids of the skills that user offers.
type offered map[string][]string

func (s *seeder) seed(ctx context.Context, opts options) error {
	userIDs := make([]string, 0, opts.users)
	skillsByUser := make(offered, opts.users)

	for i := 0; i < opts.users; i++ {
		user, err := s.createUser(ctx)
		if err != nil {
			return err
		}

		userIDs = append(userIDs, user.ID)

		ids, err := s.createSkills(ctx, user.ID)
		if err != nil {
			return err
		}

		skillsByUser[user.ID] = ids
	}

	if len(userIDs) < 2 {
		s.log.Info("not enough users for swaps, done")
		return nil
	}

	var created, completed int

	for i := 0; i < opts.swaps; i++ {
		requester := s.faker.RandomString(userIDs)
		recipient := s.faker.RandomString(userIDs)
		if requester == recipient || len(skillsByUser[requester]) == 0 || len(skillsByUser[recipient]) == 0 {
			continue
		}

		swap, err := s.swaps.Create(ctx, requester, service.CreateSwapInput{
			RecipientID:      recipient,
			SkillOfferedID:   s.faker.RandomString(skillsByUser[requester]),
			SkillRequestedID: s.faker.RandomString(skillsByUser[recipient]),
			Message:          ptr(s.faker.Sentence(12)),
		})
		if err != nil {
			return fmt.Errorf("failed to create swap: %w", err)
		}
		created++

		done, err := s.advance(ctx, swap)
		if err != nil {
			return err
		}
		if done {
			completed++
		}
	}

	s.log.Info("seeding finished",
		slog.Int("users", len(userIDs)),
		slog.Int("swaps", created),
		slog.Int("completed_swaps", completed),
	)

	return nil
}

func (s *seeder) createUser(ctx context.Context) (*api.User, error) {
	user, err := s.users.Register(ctx, service.RegisterInput{
		FirstName: s.faker.FirstName(),
		LastName:  s.faker.LastName(),
		Email:     fmt.Sprintf("%s.%d@example.com", s.faker.Username(), s.faker.Number(1000, 9999)),
		Password:  seedPassword,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	photo := fmt.Sprintf("https://i.pravatar.cc/150?u=%s", user.ID)

	user, err = s.users.UpdateProfile(ctx, user.ID, service.UpdateProfileInput{
		Bio:          ptr(s.faker.Sentence(10)),
		Location:     ptr(s.faker.City()),
		ProfilePhoto: &photo,
		IsPublic:     ptr(s.faker.Number(1, 10) > 1),
		Availability: &api.Availability{
			Weekends: s.faker.Bool(),
			Evenings: s.faker.Bool(),
			Weekdays: s.faker.Bool(),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return user, nil
}

// createSkills gives the user a few skills and returns the ids of the offered ones.
func (s *seeder) createSkills(ctx context.Context, userID string) ([]string, error) {
	levels := []string{
		string(domain.ProficiencyBeginner),
		string(domain.ProficiencyIntermediate),
		string(domain.ProficiencyAdvanced),
		string(domain.ProficiencyExpert),
	}

	var ids []string

	for i, n := 0, s.faker.Number(2, 5); i < n; i++ {
		category := s.faker.RandomString(domain.Categories)

		skillType := domain.SkillTypeOffered
		if i > 0 && s.faker.Bool() {
			skillType = domain.SkillTypeWanted
		}

		skill, err := s.skills.CreateSkill(ctx, userID, service.CreateSkillInput{
			Name:             s.faker.RandomString(skillNames[category]),
			Description:      s.faker.Paragraph(1, 2, 8, " "),
			Category:         category,
			ProficiencyLevel: domain.ProficiencyLevel(s.faker.RandomString(levels)),
			Type:             skillType,
			IsPublic:         ptr(s.faker.Number(1, 10) > 1),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create skill: %w", err)
		}

		if skillType == domain.SkillTypeOffered {
			ids = append(ids, skill.ID)
		}
	}

	return ids, nil
}

// advance moves a fresh swap along a random path of its lifecycle and reports whether it
// ended up completed with feedback.
func (s *seeder) advance(ctx context.Context, swap *api.SwapRequest) (bool, error) {
	switch s.faker.Number(1, 4) {
	case 1:
		return false, nil
	case 2:
		_, err := s.swaps.Respond(ctx, swap.RecipientID, swap.ID, domain.SwapStatusRejected)
		return false, wrap("reject swap", err)
	}

	if _, err := s.swaps.Respond(ctx, swap.RecipientID, swap.ID, domain.SwapStatusAccepted); err != nil {
		return false, wrap("accept swap", err)
	}

	if s.faker.Bool() {
		return false, nil
	}

	if _, err := s.swaps.Complete(ctx, swap.RequesterID, swap.ID); err != nil {
		return false, wrap("complete swap", err)
	}

	for _, from := range []string{swap.RequesterID, swap.RecipientID} {
		to := swap.RecipientID
		if from == swap.RecipientID {
			to = swap.RequesterID
		}

		_, err := s.feedback.Submit(ctx, service.SubmitFeedbackInput{
			SwapID:     swap.ID,
			FromUserID: from,
			ToUserID:   to,
			Rating:     s.faker.Number(domain.MinRating+1, domain.MaxRating),
			Comment:    s.faker.Sentence(8),
		})
		if err != nil {
			s.log.Warn("failed to submit feedback", slog.String("swap_id", swap.ID), sl.Err(err))
		}
	}

	return true, nil
}

func wrap(action string, err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("failed to %s: %w", action, err)
}

func ptr[T any](v T) *T { return &v }
