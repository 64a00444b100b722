package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"zfit/internal/models/db_models"
	"zfit/internal/models/request_models"
	"zfit/internal/models/response_models"
	"zfit/internal/repositories"
	mem "zfit/pkg/memcache"
	"zfit/pkg/utils"
)

// profileCacheTTL bounds how stale a fallback read may get.
const profileCacheTTL = 24 * time.Hour

type AccountServiceInterface interface {
	SignUp(ctx context.Context, request request_models.SignUpRequest) (*response_models.AuthResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AuthResponse, error)
	Logout(profileID string)
	CurrentProfile(ctx context.Context, profileID string) (*response_models.ProfileResponse, error)
	SaveProfile(ctx context.Context, profileID string, request request_models.UpdateProfileRequest) (*response_models.ProfileResponse, error)
}

type AccountService struct {
	profileRepo repositories.ProfileRepository
	cache       *mem.Store[db_models.Profile]
}

func NewAccountService(profileRepo repositories.ProfileRepository, cache *mem.Store[db_models.Profile]) AccountServiceInterface {
	return &AccountService{
		profileRepo: profileRepo,
		cache:       cache,
	}
}

func (a *AccountService) SignUp(ctx context.Context, request request_models.SignUpRequest) (*response_models.AuthResponse, error) {
	email := utils.NormalizeEmail(request.Email)
	if !strings.Contains(email, "@") {
		return nil, utils.ErrInvalidEmail
	}

	name := strings.TrimSpace(request.Name)
	if utf8.RuneCountInString(name) < 2 {
		return nil, utils.ErrInvalidDisplayName
	}

	existing, err := a.profileRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	profile := &db_models.Profile{
		Name:   name,
		Email:  email,
		Avatar: fmt.Sprintf("https://api.dicebear.com/7.x/avataaars/svg?seed=%s", email),
		Level:  1,
		XP:     0,
		Role:   db_models.RoleUser,
		Plan:   db_models.PlanFree,
	}

	if err := a.profileRepo.Insert(ctx, profile); err != nil {
		// A concurrent sign-up can slip past the FindByEmail check and lose
		// the race on the unique email index.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrEmailAlreadyExists
		}
		return nil, utils.ErrDatabaseError
	}

	a.cache.Set(profile.ID.String(), *profile, profileCacheTTL)

	return a.authResponse(profile)
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AuthResponse, error) {
	email := utils.NormalizeEmail(request.Email)

	profile, err := a.profileRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if profile == nil {
		return nil, utils.ErrAccountNotFound
	}

	a.cache.Set(profile.ID.String(), *profile, profileCacheTTL)

	return a.authResponse(profile)
}

func (a *AccountService) Logout(profileID string) {
	a.cache.Evict(profileID)
}

// CurrentProfile reconciles against the database on every call; when the
// database is unreachable the last cached snapshot answers instead, so the
// cache is a fallback and never the source of truth.
func (a *AccountService) CurrentProfile(ctx context.Context, profileID string) (*response_models.ProfileResponse, error) {
	id, err := uuid.Parse(profileID)
	if err != nil {
		return nil, utils.ErrAccountNotFound
	}

	profile, err := a.profileRepo.FindByID(ctx, id)
	if err != nil {
		if cached, ok := a.cache.Get(profileID); ok {
			log.Printf("profile %s served from cache: %v", profileID, err)
			resp := toProfileResponse(&cached)
			return &resp, nil
		}
		return nil, utils.ErrDatabaseError
	}
	if profile == nil {
		return nil, utils.ErrAccountNotFound
	}

	a.cache.Set(profileID, *profile, profileCacheTTL)

	resp := toProfileResponse(profile)
	return &resp, nil
}

func (a *AccountService) SaveProfile(ctx context.Context, profileID string, request request_models.UpdateProfileRequest) (*response_models.ProfileResponse, error) {
	id, err := uuid.Parse(profileID)
	if err != nil {
		return nil, utils.ErrAccountNotFound
	}

	profile, err := a.profileRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if profile == nil {
		return nil, utils.ErrAccountNotFound
	}

	if name := strings.TrimSpace(request.Name); name != "" {
		if utf8.RuneCountInString(name) < 2 {
			return nil, utils.ErrInvalidDisplayName
		}
		profile.Name = name
	}
	if request.Avatar != "" {
		profile.Avatar = request.Avatar
	}
	if request.Height != nil {
		profile.Height = request.Height
	}
	if request.Weight != nil {
		profile.Weight = request.Weight
	}
	if request.WeightHistory != nil {
		profile.WeightHistory = marshalWeightHistory(request.WeightHistory)
	}

	if err := a.profileRepo.Save(ctx, profile); err != nil {
		return nil, utils.ErrDatabaseError
	}

	a.cache.Set(profileID, *profile, profileCacheTTL)

	resp := toProfileResponse(profile)
	return &resp, nil
}

// marshalWeightHistory keeps only the 10 most recent samples.
func marshalWeightHistory(entries []request_models.WeightEntry) []byte {
	if len(entries) > 10 {
		entries = entries[len(entries)-10:]
	}
	b, _ := json.Marshal(entries)
	return b
}

func (a *AccountService) authResponse(profile *db_models.Profile) (*response_models.AuthResponse, error) {
	token, err := utils.CreateToken(profile.ID, profile.Role)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return &response_models.AuthResponse{
		Token:   token,
		Profile: toProfileResponse(profile),
	}, nil
}

func toProfileResponse(profile *db_models.Profile) response_models.ProfileResponse {
	var history []response_models.WeightEntry
	if len(profile.WeightHistory) > 0 {
		_ = json.Unmarshal(profile.WeightHistory, &history)
	}

	return response_models.ProfileResponse{
		ID:            profile.ID.String(),
		Name:          profile.Name,
		Avatar:        profile.Avatar,
		Level:         profile.Level,
		XP:            profile.XP,
		Role:          profile.Role,
		Email:         profile.Email,
		Plan:          string(profile.Plan),
		Height:        profile.Height,
		Weight:        profile.Weight,
		WeightHistory: history,
	}
}
