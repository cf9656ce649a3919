package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"devconnect/internal/cache"
	"devconnect/internal/models"
	"devconnect/internal/repository"
	"devconnect/internal/validation"

	"gorm.io/datatypes"
)

// ProfileService implements the profile aggregate: the profile document
// itself plus its experience and education entries.
type ProfileService struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
}

// UpsertProfileInput carries a profile update. Status and Skills are
// required; the other scalar fields are applied only when supplied, so
// an omitted field keeps its stored value. The social link set is the
// exception: it is rebuilt wholesale from the supplied links on every
// call, and an omitted link clears the stored one.
type UpsertProfileInput struct {
	UserID         uint
	Company        string
	Website        string
	Location       string
	Status         string
	Skills         string
	Bio            string
	GithubUsername string
	Youtube        string
	Twitter        string
	Facebook       string
	Linkedin       string
	Instagram      string
}

type AddExperienceInput struct {
	UserID      uint
	Title       string
	Company     string
	Location    string
	From        time.Time
	To          *time.Time
	Current     bool
	Description string
}

type AddEducationInput struct {
	UserID       uint
	School       string
	Degree       string
	FieldOfStudy string
	From         time.Time
	To           *time.Time
	Current      bool
	Description  string
}

func NewProfileService(profileRepo repository.ProfileRepository, userRepo repository.UserRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo, userRepo: userRepo}
}

// GetByUserID returns the profile belonging to the given user.
func (s *ProfileService) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	var profile models.Profile
	err := cache.CacheAside(ctx, cache.ProfileKey(userID), &profile, cache.ProfileTTL, func() error {
		p, err := s.profileRepo.GetByUserID(ctx, userID)
		if err != nil {
			return err
		}
		profile = *p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// List returns all profiles, newest first.
func (s *ProfileService) List(ctx context.Context) ([]*models.Profile, error) {
	var profiles []*models.Profile
	err := cache.CacheAside(ctx, cache.ProfilesListKey, &profiles, cache.ProfileListTTL, func() error {
		p, err := s.profileRepo.List(ctx)
		if err != nil {
			return err
		}
		profiles = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

// Upsert creates the caller's profile or applies a partial update to
// the existing one. Website and social URLs are normalized; invalid
// ones are rejected.
func (s *ProfileService) Upsert(ctx context.Context, in UpsertProfileInput) (*models.Profile, error) {
	if strings.TrimSpace(in.Status) == "" {
		return nil, models.NewValidationError("Status is required")
	}
	skills := validation.ParseSkills(in.Skills)
	if len(skills) == 0 {
		return nil, models.NewValidationError("Skills is required")
	}

	website, err := normalizeOptionalURL(in.Website)
	if err != nil {
		return nil, err
	}
	social := models.SocialLinks{}
	for _, link := range []struct {
		raw  string
		dest *string
	}{
		{in.Youtube, &social.Youtube},
		{in.Twitter, &social.Twitter},
		{in.Facebook, &social.Facebook},
		{in.Linkedin, &social.Linkedin},
		{in.Instagram, &social.Instagram},
	} {
		normalized, err := normalizeOptionalURL(link.raw)
		if err != nil {
			return nil, err
		}
		*link.dest = normalized
	}

	existing, err := s.profileRepo.GetByUserID(ctx, in.UserID)
	if err != nil {
		var appErr *models.AppError
		if !errors.As(err, &appErr) || appErr.Code != models.ErrCodeNotFound {
			return nil, err
		}
		existing = &models.Profile{UserID: in.UserID}
	}

	existing.Status = strings.TrimSpace(in.Status)
	existing.Skills = datatypes.JSONSlice[string](skills)
	existing.Social = social
	for _, field := range []struct {
		supplied string
		dest     *string
	}{
		{strings.TrimSpace(in.Company), &existing.Company},
		{website, &existing.Website},
		{strings.TrimSpace(in.Location), &existing.Location},
		{strings.TrimSpace(in.Bio), &existing.Bio},
		{strings.TrimSpace(in.GithubUsername), &existing.GithubUsername},
	} {
		if field.supplied != "" {
			*field.dest = field.supplied
		}
	}

	if existing.ID == 0 {
		if err := s.profileRepo.Create(ctx, existing); err != nil {
			return nil, err
		}
	} else {
		if err := s.profileRepo.Update(ctx, existing); err != nil {
			return nil, err
		}
	}

	return s.profileRepo.GetByUserID(ctx, in.UserID)
}

// AddExperience prepends a work history entry to the caller's profile.
func (s *ProfileService) AddExperience(ctx context.Context, in AddExperienceInput) (*models.Profile, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if strings.TrimSpace(in.Company) == "" {
		return nil, models.NewValidationError("Company is required")
	}
	if in.From.IsZero() {
		return nil, models.NewValidationError("From date is required")
	}

	profile, err := s.profileRepo.GetByUserID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	exp := &models.Experience{
		Title:       strings.TrimSpace(in.Title),
		Company:     strings.TrimSpace(in.Company),
		Location:    strings.TrimSpace(in.Location),
		From:        in.From,
		To:          in.To,
		Current:     in.Current,
		Description: strings.TrimSpace(in.Description),
	}
	if exp.Current {
		exp.To = nil
	}
	if err := s.profileRepo.AddExperience(ctx, profile.ID, exp); err != nil {
		return nil, err
	}

	return s.profileRepo.GetByUserID(ctx, in.UserID)
}

// DeleteExperience removes one work history entry by id.
func (s *ProfileService) DeleteExperience(ctx context.Context, userID, expID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.profileRepo.DeleteExperience(ctx, profile.ID, expID); err != nil {
		return nil, err
	}
	return s.profileRepo.GetByUserID(ctx, userID)
}

// AddEducation prepends a schooling entry to the caller's profile.
func (s *ProfileService) AddEducation(ctx context.Context, in AddEducationInput) (*models.Profile, error) {
	if strings.TrimSpace(in.School) == "" {
		return nil, models.NewValidationError("School is required")
	}
	if strings.TrimSpace(in.Degree) == "" {
		return nil, models.NewValidationError("Degree is required")
	}
	if strings.TrimSpace(in.FieldOfStudy) == "" {
		return nil, models.NewValidationError("Field of study is required")
	}
	if in.From.IsZero() {
		return nil, models.NewValidationError("From date is required")
	}

	profile, err := s.profileRepo.GetByUserID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	edu := &models.Education{
		School:       strings.TrimSpace(in.School),
		Degree:       strings.TrimSpace(in.Degree),
		FieldOfStudy: strings.TrimSpace(in.FieldOfStudy),
		From:         in.From,
		To:           in.To,
		Current:      in.Current,
		Description:  strings.TrimSpace(in.Description),
	}
	if edu.Current {
		edu.To = nil
	}
	if err := s.profileRepo.AddEducation(ctx, profile.ID, edu); err != nil {
		return nil, err
	}

	return s.profileRepo.GetByUserID(ctx, in.UserID)
}

// DeleteEducation removes one schooling entry by id.
func (s *ProfileService) DeleteEducation(ctx context.Context, userID, eduID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.profileRepo.DeleteEducation(ctx, profile.ID, eduID); err != nil {
		return nil, err
	}
	return s.profileRepo.GetByUserID(ctx, userID)
}

// DeleteAccount permanently removes the caller's account along with
// their profile, posts, likes and comments.
func (s *ProfileService) DeleteAccount(ctx context.Context, userID uint) error {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}
	return s.userRepo.DeleteCascade(ctx, userID)
}

func normalizeOptionalURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	normalized, err := validation.NormalizeURL(raw)
	if err != nil {
		return "", models.NewValidationError(err.Error())
	}
	return normalized, nil
}
