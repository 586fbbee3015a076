package service

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/SabihaEylul/nextjswebb/internal/errs"
	"github.com/SabihaEylul/nextjswebb/internal/lib/session"
	"github.com/SabihaEylul/nextjswebb/internal/model"
	"github.com/SabihaEylul/nextjswebb/internal/repository/memstore"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var (
	_ ServiceStore = (*memstore.Store)(nil)
	_ ProductStore = (*memstore.Store)(nil)
	_ ReviewStore  = (*memstore.Store)(nil)
	_ ContactStore = (*memstore.Store)(nil)
	_ AdminStore   = (*memstore.Store)(nil)
)

func ptr[T any](v T) *T { return &v }

func requireStatus(t *testing.T, err error, status int) {
	t.Helper()
	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Equal(t, status, httpErr.Status)
}

func TestOfferingServiceLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := NewOfferingService(memstore.New())

	created, err := svc.Create(ctx, model.ServiceFields{Name: "Saç Kesimi", Price: 150})
	require.NoError(t, err)
	require.Equal(t, "Saç Kesimi", created.Name)
	require.Equal(t, 150.0, created.Price)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, created.ID, list[0].ID)

	updated, err := svc.Update(ctx, created.ID, model.ServicePatch{Price: ptr(175.0)})
	require.NoError(t, err)
	require.Equal(t, 175.0, updated.Price)
	require.Equal(t, "Saç Kesimi", updated.Name)

	deleted, err := svc.Delete(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Service deleted successfully", deleted.Message)

	_, err = svc.Get(ctx, created.ID)
	requireStatus(t, err, http.StatusNotFound)

	_, err = svc.Delete(ctx, created.ID)
	requireStatus(t, err, http.StatusNotFound)

	_, err = svc.Update(ctx, uuid.New(), model.ServicePatch{Name: ptr("x")})
	requireStatus(t, err, http.StatusNotFound)
}

func TestListIsNewestFirst(t *testing.T) {
	ctx := context.Background()
	svc := NewProductService(memstore.New())

	for _, title := range []string{"Şampuan", "Saç Kremi", "Saç Maskesi"} {
		_, err := svc.Create(ctx, model.ProductFields{Title: title, Description: "d", ImageURL: "/images/x.jpeg"})
		require.NoError(t, err)
	}

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Equal(t, "Saç Maskesi", list[0].Title)
	require.Equal(t, "Şampuan", list[2].Title)
}

func TestReviewService(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	reviews := NewReviewService(store, store, store)

	product, err := store.CreateProduct(ctx, model.ProductFields{Title: "Şampuan", Description: "d", ImageURL: "/images/sampuan.jpeg"})
	require.NoError(t, err)

	t.Run("missing parent is 404", func(t *testing.T) {
		_, err := reviews.Create(ctx, model.ReviewFields{Name: "a", Comment: "b", Rating: 5, Target: model.ServiceTarget(uuid.New())})
		requireStatus(t, err, http.StatusNotFound)
	})

	t.Run("empty summary", func(t *testing.T) {
		summary, err := reviews.Summary(ctx, model.ProductTarget(product.ID))
		require.NoError(t, err)
		require.False(t, summary.HasRatings)
		require.Nil(t, summary.Average)
	})

	t.Run("create and summarise", func(t *testing.T) {
		for _, rating := range []int{5, 4} {
			review, err := reviews.Create(ctx, model.ReviewFields{Name: "Elif", Comment: "Güzel", Rating: rating, Target: model.ProductTarget(product.ID)})
			require.NoError(t, err)
			require.Equal(t, "Şampuan", *review.TargetName)
		}

		summary, err := reviews.Summary(ctx, model.ProductTarget(product.ID))
		require.NoError(t, err)
		require.Equal(t, 2, summary.Count)
		require.Equal(t, 4.5, *summary.Average)

		list, err := reviews.List(ctx, model.ReviewFilter{Target: model.ProductTarget(product.ID)})
		require.NoError(t, err)
		require.Len(t, list, 2)
	})

	t.Run("get by id", func(t *testing.T) {
		created, err := reviews.Create(ctx, model.ReviewFields{Name: "Deniz", Comment: "Süper", Rating: 3, Target: model.ProductTarget(product.ID)})
		require.NoError(t, err)

		got, err := reviews.Get(ctx, created.ID)
		require.NoError(t, err)
		require.Equal(t, created.ID, got.ID)
		require.Equal(t, model.ProductTarget(product.ID), got.Target)

		_, err = reviews.Delete(ctx, created.ID)
		require.NoError(t, err)

		_, err = reviews.Get(ctx, created.ID)
		requireStatus(t, err, http.StatusNotFound)
	})

	t.Run("summary of unknown parent is 404", func(t *testing.T) {
		_, err := reviews.Summary(ctx, model.ServiceTarget(uuid.New()))
		requireStatus(t, err, http.StatusNotFound)
	})

	t.Run("deleting the parent removes its reviews", func(t *testing.T) {
		require.NoError(t, store.DeleteProduct(ctx, product.ID))

		list, err := reviews.List(ctx, model.ReviewFilter{})
		require.NoError(t, err)
		require.Empty(t, list)
	})
}

type recordingNotifier struct {
	mu    sync.Mutex
	calls []string
	err   error
}

func (n *recordingNotifier) EnqueueContactNotification(_ context.Context, messageID, _, _, _ string, _ time.Time) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, messageID)
	return n.err
}

func TestContactService(t *testing.T) {
	ctx := context.Background()
	fields := model.ContactFields{Name: "Zeynep", Email: "zeynep@example.com", Message: "Merhaba"}

	t.Run("notifies on create", func(t *testing.T) {
		notifier := &recordingNotifier{}
		svc := NewContactService(memstore.New(), notifier)

		message, err := svc.Create(ctx, fields)
		require.NoError(t, err)
		require.Equal(t, []string{message.ID.String()}, notifier.calls)
	})

	t.Run("enqueue failure does not fail the request", func(t *testing.T) {
		svc := NewContactService(memstore.New(), &recordingNotifier{err: errors.New("redis down")})

		message, err := svc.Create(ctx, fields)
		require.NoError(t, err)

		fetched, err := svc.Get(ctx, message.ID)
		require.NoError(t, err)
		require.Equal(t, "Merhaba", fetched.Message)
	})

	t.Run("works without a notifier", func(t *testing.T) {
		svc := NewContactService(memstore.New(), nil)

		message, err := svc.Create(ctx, fields)
		require.NoError(t, err)

		_, err = svc.Delete(ctx, message.ID)
		require.NoError(t, err)

		_, err = svc.Get(ctx, message.ID)
		requireStatus(t, err, http.StatusNotFound)
	})
}

func newAuthService() *AuthService {
	sessions := session.NewManager("0123456789abcdef0123456789abcdef", time.Hour, memstore.NewRevocations())
	return NewAuthService(memstore.New(), sessions)
}

func TestAuthService(t *testing.T) {
	ctx := context.Background()
	auth := newAuthService()

	admin, err := auth.Register(ctx, "admin", "secret1")
	require.NoError(t, err)
	require.Equal(t, "admin", admin.Username)
	require.NotEqual(t, "secret1", admin.PasswordHash)

	t.Run("duplicate username", func(t *testing.T) {
		_, err := auth.Register(ctx, "admin", "validpass")
		requireStatus(t, err, http.StatusConflict)
	})

	t.Run("short password", func(t *testing.T) {
		_, err := auth.Register(ctx, "other", "12345")
		requireStatus(t, err, http.StatusBadRequest)
	})

	t.Run("password length counts characters", func(t *testing.T) {
		_, err := auth.Register(ctx, "multibyte", "şşş")
		requireStatus(t, err, http.StatusBadRequest)

		_, err = auth.Register(ctx, "turkish", "şifre1")
		require.NoError(t, err)
	})

	t.Run("login", func(t *testing.T) {
		got, err := auth.Login(ctx, "admin", "secret1")
		require.NoError(t, err)
		require.Equal(t, admin.ID, got.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := auth.Login(ctx, "admin", "wrong")
		requireStatus(t, err, http.StatusUnauthorized)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := auth.Login(ctx, "ghost", "anything")
		requireStatus(t, err, http.StatusUnauthorized)
	})

	t.Run("session round trip", func(t *testing.T) {
		_, claims, err := auth.StartSession(admin)
		require.NoError(t, err)

		id, err := claims.AdminID()
		require.NoError(t, err)

		me, err := auth.Me(ctx, id)
		require.NoError(t, err)
		require.Equal(t, "admin", me.Username)

		require.NoError(t, auth.EndSession(ctx, claims))
	})

	t.Run("me for deleted admin", func(t *testing.T) {
		_, err := auth.Me(ctx, uuid.New())
		requireStatus(t, err, http.StatusUnauthorized)
	})
}
