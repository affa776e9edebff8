package service_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/shenikar/community_map_system/internal/models"
	. "github.com/shenikar/community_map_system/internal/service"
	"github.com/shenikar/community_map_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestCommunityService — вспомогательная функция для создания сервиса с мокированным репозиторием
func newTestCommunityService(t *testing.T) (CommunityService, *mocks.MockCommunityRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockCommunityRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	return NewCommunityService(repoMock, logger), repoMock
}

func TestPostChatMessage_Success(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestCommunityService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().
		SaveChatMessage(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, msg *models.ChatMessage) error {
			msg.ID = 42
			return nil
		}).
		Times(1)

	// Действие
	msg, err := svc.PostChatMessage(ctx, "anon", "Всем привет")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, int64(42), msg.ID)
	assert.Equal(t, "Всем привет", msg.Message)
}

func TestPostChatMessage_EmptyMessage(t *testing.T) {
	svc, _ := newTestCommunityService(t)

	_, err := svc.PostChatMessage(context.Background(), "anon", "   ")

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.ReasonEmptyMessage, appErr.Reason)
}

func TestPostChatMessage_RepositoryError(t *testing.T) {
	svc, repoMock := newTestCommunityService(t)
	ctx := context.Background()

	repoMock.EXPECT().
		SaveChatMessage(ctx, gomock.Any()).
		Return(fmt.Errorf("connection reset")).
		Times(1)

	_, err := svc.PostChatMessage(ctx, "anon", "x")

	require.Error(t, err)
	// ошибка хранилища не валидационная, наружу уйдет как 5xx
	var appErr *models.AppError
	assert.NotErrorAs(t, err, &appErr)
}

func TestListChatMessages_LimitApplied(t *testing.T) {
	svc, repoMock := newTestCommunityService(t)
	ctx := context.Background()

	repoMock.EXPECT().
		ListChatMessages(ctx, ChatHistoryLimit).
		Return([]*models.ChatMessage{{ID: 1, Message: "x"}}, nil).
		Times(1)

	messages, err := svc.ListChatMessages(ctx)

	require.NoError(t, err)
	assert.Len(t, messages, 1)
}

func TestAddStreetHighlight(t *testing.T) {
	svc, repoMock := newTestCommunityService(t)
	ctx := context.Background()

	repoMock.EXPECT().
		CreateStreetHighlight(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, h *models.StreetHighlight) error {
			h.ID = 7
			return nil
		}).
		Times(1)

	highlight, err := svc.AddStreetHighlight(ctx, "collins-st-100", "#ff0000")

	require.NoError(t, err)
	assert.Equal(t, int64(7), highlight.ID)
	assert.Equal(t, "collins-st-100", highlight.StreetKey)
}

func TestRemoveStreetHighlight_NotFound(t *testing.T) {
	svc, repoMock := newTestCommunityService(t)
	ctx := context.Background()

	repoMock.EXPECT().
		DeleteStreetHighlight(ctx, int64(99)).
		Return(false, nil).
		Times(1)

	err := svc.RemoveStreetHighlight(ctx, 99)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.KindNotFound, appErr.Kind)
	assert.Equal(t, models.ReasonRecordNotFound, appErr.Reason)
}

func TestRemoveStreetNote_Success(t *testing.T) {
	svc, repoMock := newTestCommunityService(t)
	ctx := context.Background()

	repoMock.EXPECT().
		DeleteStreetNote(ctx, int64(3)).
		Return(true, nil).
		Times(1)

	assert.NoError(t, svc.RemoveStreetNote(ctx, 3))
}

func TestGetWelcomeNotice(t *testing.T) {
	svc, repoMock := newTestCommunityService(t)
	ctx := context.Background()

	repoMock.EXPECT().
		GetWelcomeNotice(ctx).
		Return(&models.WelcomeNotice{Content: "Добро пожаловать"}, nil).
		Times(1)

	notice, err := svc.GetWelcomeNotice(ctx)

	require.NoError(t, err)
	assert.Equal(t, "Добро пожаловать", notice.Content)
}

func TestSetWelcomeNotice(t *testing.T) {
	svc, repoMock := newTestCommunityService(t)
	ctx := context.Background()

	repoMock.EXPECT().
		UpsertWelcomeNotice(ctx, "новый текст").
		Return(&models.WelcomeNotice{Content: "новый текст"}, nil).
		Times(1)

	notice, err := svc.SetWelcomeNotice(ctx, "новый текст")

	require.NoError(t, err)
	assert.Equal(t, "новый текст", notice.Content)
}
