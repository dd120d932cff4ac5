package authenticating

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/im-AtharvaWarankar/MGNREGA-Insight/infrastructure/repository/mocks"
	"github.com/im-AtharvaWarankar/MGNREGA-Insight/internal/config"
	"github.com/im-AtharvaWarankar/MGNREGA-Insight/internal/domain"
	"github.com/im-AtharvaWarankar/MGNREGA-Insight/pkg/apiErrors"
)

const testSecret = "test-secret-key"

type authFixture struct {
	userRepo *mocks.MockUserRepository
	service  Authenticator
}

func newAuthFixture(t *testing.T) *authFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &authFixture{
		userRepo: mocks.NewMockUserRepository(ctrl),
	}

	cfg := &config.Config{SecretKey: testSecret}
	f.service = NewService(f.userRepo, cfg)
	return f
}

func hashOf(t *testing.T, password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func activeUser(t *testing.T) *domain.User {
	return &domain.User{
		ID:           3,
		Name:         "Asha",
		Lastname:     "Patel",
		Email:        "asha@example.com",
		PasswordHash: hashOf(t, "Sup3rSecret"),
		Active:       true,
		RoleID:       RoleAdmin,
	}
}

func TestCreateUser(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	input := &domain.User{
		Name:         "Asha",
		Lastname:     "Patel",
		Email:        "  Asha@Example.com ",
		PasswordHash: "Sup3rSecret",
	}

	f.userRepo.EXPECT().GetUserByEmail(ctx, "asha@example.com").Return(nil, nil)
	f.userRepo.EXPECT().
		CreateUser(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, user *domain.User) (*domain.User, error) {
			assert.Equal(t, "asha@example.com", user.Email)
			assert.Equal(t, RoleViewer, user.RoleID)
			assert.False(t, user.Active)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Sup3rSecret")))
			user.ID = 9
			return user, nil
		})

	created, err := f.service.CreateUser(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, 9, created.ID)
}

func TestCreateUser_Validation(t *testing.T) {
	tests := []struct {
		name    string
		user    *domain.User
		setup   func(f *authFixture, ctx context.Context)
		wantErr error
	}{
		{
			name:    "missing fields",
			user:    &domain.User{Email: "asha@example.com"},
			wantErr: ErrMissingRequiredData,
		},
		{
			name: "duplicate email",
			user: &domain.User{Name: "Asha", Lastname: "Patel", Email: "asha@example.com", PasswordHash: "Sup3rSecret"},
			setup: func(f *authFixture, ctx context.Context) {
				f.userRepo.EXPECT().GetUserByEmail(ctx, "asha@example.com").Return(&domain.User{ID: 1}, nil)
			},
			wantErr: ErrUserAlreadyExists,
		},
		{
			name: "weak password",
			user: &domain.User{Name: "Asha", Lastname: "Patel", Email: "asha@example.com", PasswordHash: "short"},
			setup: func(f *authFixture, ctx context.Context) {
				f.userRepo.EXPECT().GetUserByEmail(ctx, "asha@example.com").Return(nil, nil)
			},
			wantErr: ErrWeakPassword,
		},
		{
			name: "password without digits",
			user: &domain.User{Name: "Asha", Lastname: "Patel", Email: "asha@example.com", PasswordHash: "OnlyLetters"},
			setup: func(f *authFixture, ctx context.Context) {
				f.userRepo.EXPECT().GetUserByEmail(ctx, "asha@example.com").Return(nil, nil)
			},
			wantErr: ErrWeakPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture(t)
			ctx := context.Background()
			if tt.setup != nil {
				tt.setup(f, ctx)
			}

			created, err := f.service.CreateUser(ctx, tt.user)
			assert.Nil(t, created)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoginUser_IssuesValidToken(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	user := activeUser(t)
	f.userRepo.EXPECT().GetUserByEmail(ctx, "asha@example.com").Return(user, nil)

	token, err := f.service.LoginUser(ctx, "Asha@Example.com", "Sup3rSecret")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := f.service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 3, claims.UserID)
	assert.Equal(t, "asha@example.com", claims.UserEmail)
	assert.Equal(t, RoleAdmin, claims.UserRoleID)
}

func TestLoginUser_Failures(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		setup    func(f *authFixture, ctx context.Context, user *domain.User)
		wantErr  error
	}{
		{
			name:    "empty credentials",
			wantErr: ErrMissingRequiredData,
		},
		{
			name:     "unknown user",
			email:    "nobody@example.com",
			password: "Sup3rSecret",
			setup: func(f *authFixture, ctx context.Context, _ *domain.User) {
				f.userRepo.EXPECT().GetUserByEmail(ctx, "nobody@example.com").Return(nil, nil)
			},
			wantErr: ErrUserNotFound,
		},
		{
			name:     "disabled account",
			email:    "asha@example.com",
			password: "Sup3rSecret",
			setup: func(f *authFixture, ctx context.Context, user *domain.User) {
				user.Active = false
				f.userRepo.EXPECT().GetUserByEmail(ctx, "asha@example.com").Return(user, nil)
			},
			wantErr: ErrUserDisabled,
		},
		{
			name:     "wrong password",
			email:    "asha@example.com",
			password: "WrongPass1",
			setup: func(f *authFixture, ctx context.Context, user *domain.User) {
				f.userRepo.EXPECT().GetUserByEmail(ctx, "asha@example.com").Return(user, nil)
			},
			wantErr: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture(t)
			ctx := context.Background()
			if tt.setup != nil {
				tt.setup(f, ctx, activeUser(t))
			}

			token, err := f.service.LoginUser(ctx, tt.email, tt.password)
			assert.Empty(t, token)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateToken_Rejected(t *testing.T) {
	f := newAuthFixture(t)

	claims, err := f.service.ValidateToken("not.a.token")
	assert.Nil(t, claims)
	assert.Error(t, err)
}

func TestChangePassword(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	user := activeUser(t)
	f.userRepo.EXPECT().GetUserByID(ctx, 3).Return(user, nil)
	f.userRepo.EXPECT().
		UpdateUser(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, updated *domain.User) error {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("N3wSecret")))
			return nil
		})

	err := f.service.ChangePassword(ctx, 3, "Sup3rSecret", "N3wSecret")
	assert.NoError(t, err)
}

func TestChangePassword_WrongCurrentPassword(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	f.userRepo.EXPECT().GetUserByID(ctx, 3).Return(activeUser(t), nil)

	err := f.service.ChangePassword(ctx, 3, "WrongPass1", "N3wSecret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestChangePassword_WeakNewPassword(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	f.userRepo.EXPECT().GetUserByID(ctx, 3).Return(activeUser(t), nil)

	err := f.service.ChangePassword(ctx, 3, "Sup3rSecret", "weak")
	assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestListUsers_StripsPasswordHashes(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	f.userRepo.EXPECT().ListUsers(ctx).Return([]*domain.User{
		{ID: 1, PasswordHash: "hash-1"},
		{ID: 2, PasswordHash: "hash-2"},
	}, nil)

	users, err := f.service.ListUsers(ctx)
	require.NoError(t, err)
	for _, user := range users {
		assert.Empty(t, user.PasswordHash)
	}
}

func TestGetUserProfile_NotFound(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	f.userRepo.EXPECT().GetUserByID(ctx, 42).Return(nil, nil)

	user, err := f.service.GetUserProfile(ctx, 42)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateUser_PartialFields(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	name := "Usha"
	active := false

	stored := activeUser(t)
	f.userRepo.EXPECT().GetUserByID(ctx, 3).Return(stored, nil)
	f.userRepo.EXPECT().
		UpdateUser(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, updated *domain.User) error {
			assert.Equal(t, "Usha", updated.Name)
			assert.Equal(t, "Patel", updated.Lastname)
			assert.False(t, updated.Active)
			return nil
		})

	err := f.service.UpdateUser(ctx, &domain.UpdateUserRequest{
		ID:     3,
		Name:   &name,
		Active: &active,
	})
	assert.NoError(t, err)
}

func TestUpdateUser_NotFound(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	f.userRepo.EXPECT().GetUserByID(ctx, 8).Return(nil, nil)

	err := f.service.UpdateUser(ctx, &domain.UpdateUserRequest{ID: 8})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestCreateUser_RepoLookupFailure(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	f.userRepo.EXPECT().
		GetUserByEmail(ctx, "asha@example.com").
		Return(nil, errors.New("connection reset"))

	created, err := f.service.CreateUser(ctx, &domain.User{
		Name:         "Asha",
		Lastname:     "Patel",
		Email:        "asha@example.com",
		PasswordHash: "Sup3rSecret",
	})
	assert.Nil(t, created)

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, apiErrors.ErrDatabaseOperation, authErr.Code)
}
