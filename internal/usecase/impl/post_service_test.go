package impl

import (
	"context"
	"strings"
	"testing"

	"curator/internal/domain/entity"
	domainerrors "curator/internal/domain/errors"
	"curator/internal/domain/repository"
	"curator/internal/domain/service"
	mockRepo "curator/internal/mocks/repository"
	"curator/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func images(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = "https://cdn.example.com/" + strings.Repeat("x", i+1) + ".jpg"
	}

	return out
}

func TestCreatePostService_Validation(t *testing.T) {
	tests := []struct {
		name    string
		input   usecase.CreatePostInput
		message string
	}{
		{
			name:    "no images",
			input:   usecase.CreatePostInput{Caption: "hi"},
			message: "At least one image is required",
		},
		{
			name:    "too many images",
			input:   usecase.CreatePostInput{Images: images(usecase.MaxPostImages + 1)},
			message: "A post can have at most 10 images",
		},
		{
			name:    "caption too long",
			input:   usecase.CreatePostInput{Images: images(1), Caption: strings.Repeat("a", usecase.MaxCaptionLength+1)},
			message: "Caption must be 2200 characters or fewer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			socialRepo := mockRepo.NewMockSocialRepository(t)
			srv := NewCreatePostService(CreatePostServiceParams{SocialRepo: socialRepo, Logger: newDiscardLogger()})

			_, err := srv.Execute(context.Background(), tt.input)

			require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			assert.Equal(t, tt.message, domainerrors.ExtractMessage(err, ""))
		})
	}
}

func TestCreatePostService_Execute(t *testing.T) {
	socialRepo := mockRepo.NewMockSocialRepository(t)
	publisher := &recordingPublisher{}
	srv := NewCreatePostService(CreatePostServiceParams{
		SocialRepo: socialRepo,
		Publisher:  publisher,
		Config:     newTestConfig(),
		Logger:     newDiscardLogger(),
	})

	ctx := context.Background()
	input := usecase.CreatePostInput{
		AuthorID: "u1",
		Caption:  strings.Repeat("a", usecase.MaxCaptionLength),
		Images:   images(usecase.MaxPostImages),
		Tags:     []string{"ootd"},
	}
	post := &entity.SocialPost{ID: "p1"}
	socialRepo.On("CreatePost", ctx, repository.CreatePostParams{
		Caption: input.Caption,
		Images:  input.Images,
		Tags:    input.Tags,
	}).Return(post, nil)

	got, err := srv.Execute(ctx, input)

	require.NoError(t, err)
	assert.Same(t, post, got)
	events := publisher.Events()
	require.Len(t, events, 1)
	assert.Equal(t, service.EventPostCreated, events[0].Name)
	assert.Equal(t, "10", events[0].Properties["images"])
}
