package postapp_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"yatube/internal/adapters/database"
	mediaadapter "yatube/internal/adapters/media"
	groupEntity "yatube/internal/core/group"
	postEntity "yatube/internal/core/post"
	postapp "yatube/internal/core/post/service"
	"yatube/internal/ports/events"
	postPort "yatube/internal/ports/post"
	"yatube/internal/testsupport"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type recordingPublisher struct {
	mu       sync.Mutex
	subjects []string
	err      error
}

func (p *recordingPublisher) Publish(_ context.Context, subject string, _ any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subjects = append(p.subjects, subject)
	return p.err
}

func newService(t *testing.T) (*postapp.PostService, *gorm.DB, *recordingPublisher) {
	t.Helper()
	db := testsupport.NewDB(t)
	pub := &recordingPublisher{}
	svc := postapp.NewPostService(
		database.NewPostRepositoryDatabase(db),
		database.NewGroupRepositoryDatabase(db),
		mediaadapter.NewLocalStorage(t.TempDir()),
		pub,
	)
	return svc, db, pub
}

func TestCreatePostStoresAuthorTextAndGroup(t *testing.T) {
	svc, db, pub := newService(t)
	ctx := context.Background()
	author := testsupport.CreateUser(t, db, "")
	g := testsupport.CreateGroup(t, db, "test_slug", "Тестовая группа")

	created, err := svc.CreatePost(ctx, author.ID, postPort.PostInput{Text: "Тестовый текст", GroupID: &g.ID})
	require.NoError(t, err)

	stored, err := svc.GetPost(ctx, created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, author.ID, stored.UserID)
	assert.Equal(t, "Тестовый текст", stored.Text)
	require.NotNil(t, stored.GroupID)
	assert.Equal(t, g.ID, *stored.GroupID)
	assert.Equal(t, []string{events.SubjectPostCreated}, pub.subjects)
}

func TestCreatePostWithImage(t *testing.T) {
	svc, db, _ := newService(t)
	author := testsupport.CreateUser(t, db, "")

	created, err := svc.CreatePost(context.Background(), author.ID, postPort.PostInput{
		Text:  "with image",
		Image: &postPort.ImageUpload{Filename: "small.gif", Data: []byte("GIF89a")},
	})
	require.NoError(t, err)
	assert.Equal(t, "posts/small.gif", created.Image)
}

func TestCreatePostRejectsBlankTextAndUnknownGroup(t *testing.T) {
	svc, db, _ := newService(t)
	ctx := context.Background()
	author := testsupport.CreateUser(t, db, "")

	_, err := svc.CreatePost(ctx, author.ID, postPort.PostInput{Text: "   "})
	assert.ErrorIs(t, err, postEntity.ErrEmptyText)

	missing := uuid.Must(uuid.NewV4())
	_, err = svc.CreatePost(ctx, author.ID, postPort.PostInput{Text: "ok", GroupID: &missing})
	assert.ErrorIs(t, err, groupEntity.ErrNotFound)

	assert.Zero(t, testsupport.CountRows(t, db, &postEntity.Post{}, ""))
}

func TestCreatePostSurvivesPublisherFailure(t *testing.T) {
	svc, db, pub := newService(t)
	pub.err = errors.New("broker down")
	author := testsupport.CreateUser(t, db, "")

	_, err := svc.CreatePost(context.Background(), author.ID, postPort.PostInput{Text: "still saved"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), testsupport.CountRows(t, db, &postEntity.Post{}, ""))
}

func TestUpdatePostByAuthor(t *testing.T) {
	svc, db, _ := newService(t)
	ctx := context.Background()
	author := testsupport.CreateUser(t, db, "")
	g := testsupport.CreateGroup(t, db, "g", "G")
	original := testsupport.CreatePost(t, db, author, nil, "old text")

	p, decision, err := svc.Authorize(ctx, author.ID, original.ID.String())
	require.NoError(t, err)
	require.Equal(t, postEntity.Allowed, decision)

	_, err = svc.UpdatePost(ctx, author.ID, p, postPort.PostInput{Text: "new text", GroupID: &g.ID})
	require.NoError(t, err)

	stored, err := svc.GetPost(ctx, original.ID.String())
	require.NoError(t, err)
	assert.Equal(t, original.ID, stored.ID)
	assert.Equal(t, author.ID, stored.UserID)
	assert.Equal(t, "new text", stored.Text)
	require.NotNil(t, stored.Group)
	assert.Equal(t, "G", stored.Group.Title)
	assert.Equal(t, int64(1), testsupport.CountRows(t, db, &postEntity.Post{}, ""))
}

func TestUpdatePostByOtherUserIsDenied(t *testing.T) {
	svc, db, _ := newService(t)
	ctx := context.Background()
	author := testsupport.CreateUser(t, db, "")
	intruder := testsupport.CreateUser(t, db, "")
	original := testsupport.CreatePost(t, db, author, nil, "untouched")

	p, decision, err := svc.Authorize(ctx, intruder.ID, original.ID.String())
	require.NoError(t, err)
	assert.Equal(t, postEntity.Denied, decision)

	_, err = svc.UpdatePost(ctx, intruder.ID, p, postPort.PostInput{Text: "hacked"})
	assert.ErrorIs(t, err, postEntity.ErrForbidden)

	stored, err := svc.GetPost(ctx, original.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "untouched", stored.Text)
}

func TestUpdatePostKeepsImageWhenNoneUploaded(t *testing.T) {
	svc, db, _ := newService(t)
	ctx := context.Background()
	author := testsupport.CreateUser(t, db, "")

	created, err := svc.CreatePost(ctx, author.ID, postPort.PostInput{
		Text:  "pic",
		Image: &postPort.ImageUpload{Filename: "small.gif", Data: []byte("GIF89a")},
	})
	require.NoError(t, err)

	p, _, err := svc.Authorize(ctx, author.ID, created.ID.String())
	require.NoError(t, err)
	_, err = svc.UpdatePost(ctx, author.ID, p, postPort.PostInput{Text: "pic, edited"})
	require.NoError(t, err)

	stored, err := svc.GetPost(ctx, created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "posts/small.gif", stored.Image)
}

func TestListingsPaginate(t *testing.T) {
	svc, db, _ := newService(t)
	ctx := context.Background()
	author := testsupport.CreateUser(t, db, "testauth")
	g := testsupport.CreateGroup(t, db, "test-slug", "Тестовая группа")
	for i := 0; i < 14; i++ {
		testsupport.CreatePost(t, db, author, g, "")
	}

	first, err := svc.Index(ctx, "")
	require.NoError(t, err)
	assert.Len(t, first.Posts, 10)

	second, err := svc.Index(ctx, "2")
	require.NoError(t, err)
	assert.Len(t, second.Posts, 4)

	group, byGroup, err := svc.GroupPosts(ctx, "test-slug", "2")
	require.NoError(t, err)
	assert.Equal(t, "test-slug", group.Slug)
	assert.Len(t, byGroup.Posts, 4)

	byAuthor, err := svc.AuthorPosts(ctx, author.ID, "1")
	require.NoError(t, err)
	assert.Len(t, byAuthor.Posts, 10)
	assert.Equal(t, int64(14), byAuthor.Page.Count)
}

func TestGetPostUnknownOrMalformed(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()

	_, err := svc.GetPost(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, postEntity.ErrNotFound)

	_, err = svc.GetPost(ctx, uuid.Must(uuid.NewV4()).String())
	assert.ErrorIs(t, err, postEntity.ErrNotFound)

	_, _, err = svc.GroupPosts(ctx, "nope", "")
	assert.ErrorIs(t, err, groupEntity.ErrNotFound)
}
