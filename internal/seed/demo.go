package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"skillswap/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// DemoOptions configures demo data generation.
type DemoOptions struct {
	NumUsers int
	// MaxSkills bounds the number of taught skills per user; interests use
	// the same bound independently.
	MaxSkills int
	Seed      int64
}

// DemoUsers populates the database with fake users, skill declarations and a
// handful of friendships so recommendations have something to chew on.
// Development only; refuses to run against a non-empty users table.
func DemoUsers(db *gorm.DB, opts DemoOptions) error {
	if opts.NumUsers <= 0 {
		opts.NumUsers = 25
	}
	if opts.MaxSkills <= 0 {
		opts.MaxSkills = 4
	}
	seedVal := opts.Seed
	if seedVal == 0 {
		seedVal = time.Now().UnixNano()
	}
	gofakeit.Seed(seedVal)
	rng := rand.New(rand.NewSource(seedVal))

	var existing int64
	if err := db.Model(&models.User{}).Count(&existing).Error; err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if existing > 0 {
		log.Printf("demo seed skipped: %d users already present", existing)
		return nil
	}

	var skills []models.Skill
	if err := db.Find(&skills).Error; err != nil {
		return fmt.Errorf("load skill catalog: %w", err)
	}
	if len(skills) == 0 {
		return fmt.Errorf("skill catalog is empty; seed it first")
	}

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		name := gofakeit.Name()
		user := &models.User{
			Username:  fmt.Sprintf("%s%d", strings.ToLower(gofakeit.Username()), i),
			Name:      name,
			Bio:       gofakeit.Sentence(12),
			AvatarURL: fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
		}
		if err := db.Create(user).Error; err != nil {
			return fmt.Errorf("create demo user: %w", err)
		}
		users = append(users, user)

		for _, skillID := range pickSkillIDs(rng, skills, opts.MaxSkills) {
			decl := models.UserSkill{
				UserID:  user.ID,
				SkillID: skillID,
				Level:   models.SkillLevel(rng.Intn(3) + 1),
			}
			if err := db.Create(&decl).Error; err != nil {
				return fmt.Errorf("create demo skill declaration: %w", err)
			}
		}
		for _, skillID := range pickSkillIDs(rng, skills, opts.MaxSkills) {
			decl := models.UserInterest{
				UserID:  user.ID,
				SkillID: skillID,
				Level:   models.SkillLevel(rng.Intn(3) + 1),
			}
			if err := db.Create(&decl).Error; err != nil {
				return fmt.Errorf("create demo interest declaration: %w", err)
			}
		}
	}

	// Sprinkle in some friendships: roughly one edge per three users, mixed
	// statuses, never duplicating a pair.
	statuses := []models.FriendshipStatus{
		models.FriendshipStatusAccepted,
		models.FriendshipStatusAccepted,
		models.FriendshipStatusPending,
	}
	for i := 0; i < len(users)/3; i++ {
		a := users[rng.Intn(len(users))]
		b := users[rng.Intn(len(users))]
		if a.ID == b.ID {
			continue
		}
		edge := models.Friendship{
			RequesterID: a.ID,
			AddresseeID: b.ID,
			Status:      statuses[rng.Intn(len(statuses))],
		}
		// Ignore pair collisions; the unique index keeps one edge per pair.
		if err := db.Create(&edge).Error; err != nil {
			continue
		}
		if edge.Status == models.FriendshipStatusAccepted {
			msg := models.Message{
				SenderID:   a.ID,
				ReceiverID: b.ID,
				Content:    gofakeit.HipsterSentence(8),
			}
			if err := db.Create(&msg).Error; err != nil {
				return fmt.Errorf("create demo message: %w", err)
			}
		}
	}

	log.Printf("demo seed complete: %d users created", len(users))
	return nil
}

// pickSkillIDs samples between 1 and max distinct skill IDs.
func pickSkillIDs(rng *rand.Rand, skills []models.Skill, max int) []uint {
	n := rng.Intn(max) + 1
	if n > len(skills) {
		n = len(skills)
	}
	perm := rng.Perm(len(skills))
	ids := make([]uint, 0, n)
	for _, idx := range perm[:n] {
		ids = append(ids, skills[idx].ID)
	}
	return ids
}
