package forms_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"yatube/internal/adapters/httpapi/forms"
	"yatube/internal/core/group"
	"yatube/internal/testsupport"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func urlencodedContext(values url.Values) *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.Request = req
	return c
}

func multipartContext(t *testing.T, fields map[string]string, filename string, data []byte) *gin.Context {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	part, err := w.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req := httptest.NewRequest(http.MethodPost, "/", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	c.Request = req
	return c
}

func testGroups() []*group.Group {
	return []*group.Group{{ID: uuid.Must(uuid.NewV4()), Title: "Тестовая группа", Slug: "test-slug"}}
}

func TestPostForm_MissingTextReportsFieldError(t *testing.T) {
	var form forms.PostForm
	err := urlencodedContext(url.Values{"text": {""}}).ShouldBind(&form)
	require.Error(t, err)

	form.Errors = forms.FromBinding(err)
	form.Validate(testGroups())

	assert.Equal(t, []string{"This field is required."}, form.Errors.Get("text"))
	assert.False(t, form.Errors.Valid())
}

func TestPostForm_WhitespaceTextIsRequired(t *testing.T) {
	var form forms.PostForm
	require.NoError(t, urlencodedContext(url.Values{"text": {"   "}}).ShouldBind(&form))

	form.Validate(nil)

	assert.True(t, form.Errors.Has("text"))
}

func TestPostForm_ValidGroup(t *testing.T) {
	groups := testGroups()
	var form forms.PostForm
	require.NoError(t, urlencodedContext(url.Values{
		"text":  {" Тестовый текст "},
		"group": {groups[0].ID.String()},
	}).ShouldBind(&form))

	in := form.Validate(groups)

	require.True(t, form.Errors.Valid())
	assert.Equal(t, "Тестовый текст", in.Text)
	require.NotNil(t, in.GroupID)
	assert.Equal(t, groups[0].ID, *in.GroupID)
	assert.Nil(t, in.Image)
}

func TestPostForm_UnknownGroupIsRejected(t *testing.T) {
	for _, raw := range []string{"not-a-uuid", uuid.Must(uuid.NewV4()).String()} {
		var form forms.PostForm
		require.NoError(t, urlencodedContext(url.Values{"text": {"text"}, "group": {raw}}).ShouldBind(&form))

		in := form.Validate(testGroups())

		assert.True(t, form.Errors.Has("group"), raw)
		assert.Nil(t, in.GroupID)
	}
}

func TestPostForm_ReadsImage(t *testing.T) {
	var form forms.PostForm
	c := multipartContext(t, map[string]string{"text": "Тестовый текст"}, "small.gif", testsupport.SmallGIF)
	require.NoError(t, c.ShouldBind(&form))
	require.NotNil(t, form.Image)

	in := form.Validate(nil)

	require.True(t, form.Errors.Valid(), form.Errors)
	require.NotNil(t, in.Image)
	assert.Equal(t, "small.gif", in.Image.Filename)
	assert.Equal(t, testsupport.SmallGIF, in.Image.Data)
}

func TestPostForm_RejectsNonImageUpload(t *testing.T) {
	var form forms.PostForm
	c := multipartContext(t, map[string]string{"text": "Тестовый текст"}, "notes.gif", []byte("just some text"))
	require.NoError(t, c.ShouldBind(&form))

	in := form.Validate(nil)

	assert.True(t, form.Errors.Has("image"))
	assert.Nil(t, in.Image)
}

func TestSignupForm_Errors(t *testing.T) {
	var form forms.SignupForm
	err := urlencodedContext(url.Values{
		"username":  {"bad name!"},
		"email":     {"nope"},
		"password1": {"longenough"},
		"password2": {"different1"},
	}).ShouldBind(&form)
	require.Error(t, err)

	form.Errors = forms.FromBinding(err)
	form.Validate()

	assert.True(t, form.Errors.Has("email"))
	assert.Equal(t, []string{"The two password fields didn't match."}, form.Errors.Get("password2"))
	assert.True(t, form.Errors.Has("username"))
	assert.False(t, form.Errors.Has("password1"))
}

func TestSignupForm_Valid(t *testing.T) {
	var form forms.SignupForm
	require.NoError(t, urlencodedContext(url.Values{
		"first_name": {"Лев"},
		"username":   {"leo.tolstoy"},
		"email":      {"leo@example.com"},
		"password1":  {"war-and-peace"},
		"password2":  {"war-and-peace"},
	}).ShouldBind(&form))

	form.Validate()

	assert.True(t, form.Errors.Valid())
}
