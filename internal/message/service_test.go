package message

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	messages []*Message
}

func (r *fakeRepository) Create(_ context.Context, m *Message) error {
	m.ID = fmt.Sprintf("msg-%d", len(r.messages)+1)
	m.CreatedAt = time.Now().UTC()
	r.messages = append(r.messages, m)
	return nil
}

func (r *fakeRepository) Conversation(_ context.Context, userA, userB string) ([]*Message, error) {
	var out []*Message
	for _, m := range r.messages {
		if (m.SenderID == userA && m.RecipientID == userB) ||
			(m.SenderID == userB && m.RecipientID == userA) {
			out = append(out, m)
		}
	}
	return out, nil
}

func TestSend(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepository{}
	svc := NewService(repo)

	m, err := svc.Send(ctx, SendRequest{
		SenderID:    "owner-1",
		RecipientID: "vet-1",
		Content:     "  Is this food okay for puppies?  ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Is this food okay for puppies?", m.Content)
	assert.False(t, m.IsRead)

	_, err = svc.Send(ctx, SendRequest{SenderID: "owner-1", RecipientID: "vet-1", Content: "   "})
	assert.ErrorIs(t, err, ErrContentRequired)

	_, err = svc.Send(ctx, SendRequest{SenderID: "owner-1", Content: "hello"})
	assert.ErrorIs(t, err, ErrRecipientRequired)
}

func TestConversationIsBidirectional(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepository{}
	svc := NewService(repo)

	_, err := svc.Send(ctx, SendRequest{SenderID: "owner-1", RecipientID: "vet-1", Content: "hello"})
	require.NoError(t, err)
	_, err = svc.Send(ctx, SendRequest{SenderID: "vet-1", RecipientID: "owner-1", Content: "hi there"})
	require.NoError(t, err)
	_, err = svc.Send(ctx, SendRequest{SenderID: "owner-2", RecipientID: "vet-1", Content: "unrelated"})
	require.NoError(t, err)

	thread, err := svc.Conversation(ctx, "owner-1", "vet-1")
	require.NoError(t, err)
	require.Len(t, thread, 2)
	assert.Equal(t, "hello", thread[0].Content)
	assert.Equal(t, "hi there", thread[1].Content)
}
