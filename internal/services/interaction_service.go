package services

import (
	"fmt"
	"log"

	"carekitchen/internal/domain"
	"carekitchen/internal/models"
	"carekitchen/internal/repositories"
)

// InteractionService handles requests, ratings, feedback, history lookups
// and the analytics counters.
type InteractionService struct {
	foodRepo     repositories.FoodRepository
	userRepo     repositories.UserRepository
	historyRepo  repositories.HistoryRepository
	ratingRepo   repositories.RatingRepository
	feedbackRepo repositories.FeedbackRepository
	activityRepo repositories.ActivityRepository
	notifier     *NotificationService
}

// NewInteractionService creates a new InteractionService.
func NewInteractionService(
	foodRepo repositories.FoodRepository,
	userRepo repositories.UserRepository,
	historyRepo repositories.HistoryRepository,
	ratingRepo repositories.RatingRepository,
	feedbackRepo repositories.FeedbackRepository,
	activityRepo repositories.ActivityRepository,
	notifier *NotificationService,
) *InteractionService {
	return &InteractionService{
		foodRepo:     foodRepo,
		userRepo:     userRepo,
		historyRepo:  historyRepo,
		ratingRepo:   ratingRepo,
		feedbackRepo: feedbackRepo,
		activityRepo: activityRepo,
		notifier:     notifier,
	}
}

// RequestItem reserves the item for the requester. The claim is a single
// conditional update on the availability flag, so concurrent requests for
// the same item cannot both succeed. On success a request history row is
// recorded for the requester and a donation history row for the owner.
func (s *InteractionService) RequestItem(requesterID, itemID uint) (*models.RequestHistory, error) {
	item, err := s.foodRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item.UserID == requesterID {
		return nil, fmt.Errorf("%w: cannot request your own food item", domain.ErrValidation)
	}

	claimed, err := s.foodRepo.Reserve(itemID)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, fmt.Errorf("%w: food item is no longer available", domain.ErrValidation)
	}

	request := &models.RequestHistory{
		UserID:     requesterID,
		FoodItemID: itemID,
	}
	if err := s.historyRepo.CreateRequest(request); err != nil {
		return nil, err
	}
	donation := &models.DonationHistory{
		UserID:     item.UserID,
		FoodItemID: itemID,
	}
	if err := s.historyRepo.CreateDonation(donation); err != nil {
		return nil, err
	}

	recordActivity(s.activityRepo, requesterID, fmt.Sprintf("requested food item %q", item.FoodType))
	if s.notifier != nil {
		message := fmt.Sprintf("Your %q listing has been requested.", item.FoodType)
		if _, err := s.notifier.Notify(item.UserID, message); err != nil {
			log.Printf("Warning: failed to notify owner %d about request: %v", item.UserID, err)
		}
	}
	return request, nil
}

// RateUser records a rating for another user. Ratings are bounded 1-5,
// self-ratings are rejected and a rater may rate the same user for the
// same item only once.
func (s *InteractionService) RateUser(raterID, ratedUserID uint, req domain.RateUserRequest) (*models.RatingReview, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", domain.ErrValidation)
	}
	if raterID == ratedUserID {
		return nil, fmt.Errorf("%w: cannot rate yourself", domain.ErrValidation)
	}
	if _, err := s.userRepo.GetByID(ratedUserID); err != nil {
		return nil, err
	}

	exists, err := s.ratingRepo.Exists(raterID, ratedUserID, req.FoodItemID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: you have already rated this user for this item", domain.ErrValidation)
	}

	rating := &models.RatingReview{
		RatedUserID:   ratedUserID,
		RatedByUserID: raterID,
		FoodItemID:    req.FoodItemID,
		Rating:        req.Rating,
		Review:        req.Review,
	}
	if err := s.ratingRepo.Create(rating); err != nil {
		return nil, err
	}

	recordActivity(s.activityRepo, raterID, fmt.Sprintf("rated user %d", ratedUserID))
	return rating, nil
}

// RatingsForUser lists ratings a user has received.
func (s *InteractionService) RatingsForUser(ratedUserID uint) ([]models.RatingReview, error) {
	return s.ratingRepo.GetForUser(ratedUserID)
}

// DonationHistory lists the caller's donation records.
func (s *InteractionService) DonationHistory(userID uint) ([]models.DonationHistory, error) {
	return s.historyRepo.DonationsByUser(userID)
}

// RequestHistory lists the caller's request records.
func (s *InteractionService) RequestHistory(userID uint) ([]models.RequestHistory, error) {
	return s.historyRepo.RequestsByUser(userID)
}

// SubmitFeedback appends a feedback record.
func (s *InteractionService) SubmitFeedback(userID uint, message string) (*models.Feedback, error) {
	feedback := &models.Feedback{
		UserID:  userID,
		Message: message,
	}
	if err := s.feedbackRepo.Create(feedback); err != nil {
		return nil, err
	}

	recordActivity(s.activityRepo, userID, "submitted feedback")
	return feedback, nil
}

// Analytics returns the aggregate counters: items donated so far and the
// number of recipient accounts.
func (s *InteractionService) Analytics() (domain.AnalyticsResponse, error) {
	donated, err := s.foodRepo.CountUnavailable()
	if err != nil {
		return domain.AnalyticsResponse{}, err
	}
	recipients, err := s.userRepo.CountByRole(models.RoleRecipient)
	if err != nil {
		return domain.AnalyticsResponse{}, err
	}
	return domain.AnalyticsResponse{
		TotalFoodDonated: donated,
		UsersHelped:      recipients,
	}, nil
}
