package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-crud-api/internal/logger"
	"github.com/MKhiriev/go-crud-api/internal/mock"
	"github.com/MKhiriev/go-crud-api/internal/store"
	"github.com/MKhiriev/go-crud-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestUserSvc(t *testing.T, ctrl *gomock.Controller) (UserService, *mock.MockUserRepository, *mock.MockItemRepository) {
	t.Helper()
	users := mock.NewMockUserRepository(ctrl)
	items := mock.NewMockItemRepository(ctrl)

	return NewUserService(users, items, logger.Nop()), users, items
}

func validCreateUserRequest() models.CreateUserRequest {
	return models.CreateUserRequest{
		Username: models.Some("ada"),
		Email:    models.Some("ada@example.com"),
		Password: models.Some("pw"),
	}
}

func TestUserService_CreateUser_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestUserSvc(t, ctrl)

	want := models.User{ID: 1, Username: "ada", Email: "ada@example.com", IsActive: true}
	users.EXPECT().CreateUser(gomock.Any(), models.NewUser{
		Username: "ada",
		Email:    "ada@example.com",
		Password: "pw",
		IsActive: true,
		IsAdmin:  false,
	}).Return(want, nil)

	got, err := svc.CreateUser(context.Background(), validCreateUserRequest())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestUserService_CreateUser_ExplicitFlags(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestUserSvc(t, ctrl)

	req := validCreateUserRequest()
	req.IsActive = models.Some(false)
	req.IsAdmin = models.Some(true)

	users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.NewUser) (models.User, error) {
			assert.False(t, u.IsActive)
			assert.True(t, u.IsAdmin)
			return models.User{ID: 1}, nil
		})

	_, err := svc.CreateUser(context.Background(), req)
	require.NoError(t, err)
}

func TestUserService_CreateUser_MissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *models.CreateUserRequest)
	}{
		{"no username", func(r *models.CreateUserRequest) { r.Username = models.Optional[string]{} }},
		{"null email", func(r *models.CreateUserRequest) { r.Email = models.Optional[string]{Set: true, Null: true} }},
		{"empty password", func(r *models.CreateUserRequest) { r.Password = models.Some("") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _, _ := newTestUserSvc(t, ctrl)

			req := validCreateUserRequest()
			tt.mutate(&req)

			_, err := svc.CreateUser(context.Background(), req)
			assert.ErrorIs(t, err, ErrMissingRequiredFields)
		})
	}
}

func TestUserService_CreateUser_NullFlag(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestUserSvc(t, ctrl)

	req := validCreateUserRequest()
	req.IsAdmin = models.Optional[bool]{Set: true, Null: true}

	_, err := svc.CreateUser(context.Background(), req)

	var fieldErr *InvalidFieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "is_admin", fieldErr.Field)
	assert.ErrorIs(t, err, ErrInvalidFieldValue)
}

func TestUserService_CreateUser_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestUserSvc(t, ctrl)

	users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.CreateUser(context.Background(), validCreateUserRequest())
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestUserService_UpdateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestUserSvc(t, ctrl)

	patch := models.UserPatch{Email: models.Some("new@example.com")}
	users.EXPECT().UpdateUser(gomock.Any(), int64(3), patch).Return(models.User{ID: 3, Email: "new@example.com"}, nil)

	got, err := svc.UpdateUser(context.Background(), 3, patch)
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", got.Email)
}

func TestUserService_UpdateUser_InvalidFields(t *testing.T) {
	tests := []struct {
		name  string
		patch models.UserPatch
		field string
	}{
		{"null username", models.UserPatch{Username: models.Optional[string]{Set: true, Null: true}}, "username"},
		{"empty email", models.UserPatch{Email: models.Some("")}, "email"},
		{"empty password", models.UserPatch{Password: models.Some("")}, "password"},
		{"null is_active", models.UserPatch{IsActive: models.Optional[bool]{Set: true, Null: true}}, "is_active"},
		{"null is_admin", models.UserPatch{IsAdmin: models.Optional[bool]{Set: true, Null: true}}, "is_admin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _, _ := newTestUserSvc(t, ctrl)

			_, err := svc.UpdateUser(context.Background(), 1, tt.patch)

			var fieldErr *InvalidFieldError
			require.True(t, errors.As(err, &fieldErr))
			assert.Equal(t, tt.field, fieldErr.Field)
		})
	}
}

func TestUserService_UpdateUser_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestUserSvc(t, ctrl)

	users.EXPECT().UpdateUser(gomock.Any(), int64(9), gomock.Any()).Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.UpdateUser(context.Background(), 9, models.UserPatch{})
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestUserService_DeleteUser_HasItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestUserSvc(t, ctrl)

	users.EXPECT().DeleteUser(gomock.Any(), int64(2)).Return(store.ErrUserHasItems)

	err := svc.DeleteUser(context.Background(), 2)
	assert.ErrorIs(t, err, store.ErrUserHasItems)
}

func TestUserService_ListUserItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, items := newTestUserSvc(t, ctrl)

	want := []models.Item{{ID: 1, Name: "a", UserID: 5}}
	gomock.InOrder(
		users.EXPECT().GetUserByID(gomock.Any(), int64(5)).Return(models.User{ID: 5}, nil),
		items.EXPECT().GetItemsByUserID(gomock.Any(), int64(5)).Return(want, nil),
	)

	got, err := svc.ListUserItems(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestUserService_ListUserItems_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestUserSvc(t, ctrl)

	users.EXPECT().GetUserByID(gomock.Any(), int64(5)).Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.ListUserItems(context.Background(), 5)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestUserService_ListAndGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	users.EXPECT().GetAllUsers(gomock.Any()).Return([]models.User{}, nil)
	users.EXPECT().GetUserByID(gomock.Any(), int64(1)).Return(models.User{ID: 1}, nil)

	list, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	user, err := svc.GetUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
}
