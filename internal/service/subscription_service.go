package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/aleksej-tulko/drf-foodgram/internal/models"
	"github.com/aleksej-tulko/drf-foodgram/internal/repository"
)

var (
	ErrSelfSubscription  = errors.New("you cannot subscribe to yourself")
	ErrAlreadySubscribed = errors.New("you are already subscribed")
	ErrNotSubscribed     = errors.New("you are not subscribed to this user")
)

// SubscribedAuthor is one entry of the subscriptions listing: the
// followed author plus a slice of their recipes.
type SubscribedAuthor struct {
	Author       *models.User
	Recipes      []*models.Recipe
	RecipesCount int64
}

type SubscriptionService struct {
	subs    repository.SubscriptionRepository
	users   repository.UserRepository
	recipes repository.RecipeRepository
}

func NewSubscriptionService(
	subs repository.SubscriptionRepository,
	users repository.UserRepository,
	recipes repository.RecipeRepository,
) *SubscriptionService {
	return &SubscriptionService{subs: subs, users: users, recipes: recipes}
}

func (s *SubscriptionService) Subscribe(userID, followingID uint, recipesLimit int) (*SubscribedAuthor, error) {
	if userID == followingID {
		return nil, ErrSelfSubscription
	}

	following, err := s.users.FindByID(followingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, err
	}

	exists, err := s.subs.Exists(userID, followingID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadySubscribed
	}

	if _, err := s.subs.Create(&models.Subscription{
		UserID:      userID,
		FollowingID: followingID,
	}); err != nil {
		return nil, err
	}

	return s.describe(following, recipesLimit)
}

func (s *SubscriptionService) Unsubscribe(userID, followingID uint) error {
	if _, err := s.users.FindByID(followingID); err != nil {
		return err
	}
	removed, err := s.subs.Delete(userID, followingID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrNotSubscribed
	}
	return nil
}

func (s *SubscriptionService) IsSubscribed(userID, followingID uint) (bool, error) {
	if userID == 0 {
		return false, nil
	}
	return s.subs.Exists(userID, followingID)
}

func (s *SubscriptionService) ListSubscriptions(
	userID uint, offset, limit, recipesLimit int,
) ([]*SubscribedAuthor, int64, error) {
	count, err := s.subs.CountByUser(userID)
	if err != nil {
		return nil, 0, err
	}

	subs, err := s.subs.FindPageByUser(userID, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	authors := make([]*SubscribedAuthor, 0, len(subs))
	for _, sub := range subs {
		following := sub.Following
		described, err := s.describe(&following, recipesLimit)
		if err != nil {
			return nil, 0, err
		}
		authors = append(authors, described)
	}
	return authors, count, nil
}

func (s *SubscriptionService) describe(author *models.User, recipesLimit int) (*SubscribedAuthor, error) {
	recipes, err := s.recipes.FindPageByAuthor(author.ID, recipesLimit)
	if err != nil {
		return nil, err
	}
	count, err := s.recipes.CountByAuthor(author.ID)
	if err != nil {
		return nil, err
	}
	return &SubscribedAuthor{Author: author, Recipes: recipes, RecipesCount: count}, nil
}
