package forms

import (
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	groupEntity "yatube/internal/core/group"
	postEntity "yatube/internal/core/post"
	postPort "yatube/internal/ports/post"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gofrs/uuid"
)

// MaxImageSize caps uploaded post images.
const MaxImageSize = 5 << 20

const (
	msgImageEmpty   = "The submitted file is empty."
	msgImageTooBig  = "The file is too large. Images may be at most 5 MB."
	msgImageInvalid = "Upload a valid image. The file you uploaded was either not an image or a corrupted image."
)

// PostForm is the create and edit form for posts. Group holds the id of
// the chosen group, empty for none.
type PostForm struct {
	Text   string                `form:"text" binding:"required"`
	Group  string                `form:"group"`
	Image  *multipart.FileHeader `form:"image"`
	Errors Errors                `form:"-"`
}

// PostFormFrom prefills the form with an existing post.
func PostFormFrom(p *postEntity.Post) *PostForm {
	f := &PostForm{Text: p.Text, Errors: Errors{}}
	if p.GroupID != nil {
		f.Group = p.GroupID.String()
	}
	return f
}

// Validate checks the bound values against the available groups and reads
// the uploaded image. Problems are added to f.Errors.
func (f *PostForm) Validate(groups []*groupEntity.Group) postPort.PostInput {
	if f.Errors == nil {
		f.Errors = Errors{}
	}

	in := postPort.PostInput{Text: strings.TrimSpace(f.Text)}
	if in.Text == "" && !f.Errors.Has("text") {
		f.Errors.Add("text", msgRequired)
	}

	if f.Group != "" {
		if id, ok := pickGroup(f.Group, groups); ok {
			in.GroupID = &id
		} else {
			f.Errors.Add("group", "Select a valid choice. That choice is not one of the available choices.")
		}
	}

	if f.Image != nil {
		upload, problem := readImage(f.Image)
		if problem != "" {
			f.Errors.Add("image", problem)
		} else {
			in.Image = upload
		}
	}
	return in
}

func pickGroup(raw string, groups []*groupEntity.Group) (uuid.UUID, bool) {
	id, err := uuid.FromString(raw)
	if err != nil {
		return uuid.Nil, false
	}
	for _, g := range groups {
		if g.ID == id {
			return id, true
		}
	}
	return uuid.Nil, false
}

// readImage returns the upload, or the message explaining why it was refused.
func readImage(fh *multipart.FileHeader) (*postPort.ImageUpload, string) {
	if fh.Size == 0 {
		return nil, msgImageEmpty
	}
	if fh.Size > MaxImageSize {
		return nil, msgImageTooBig
	}

	file, err := fh.Open()
	if err != nil {
		return nil, msgImageInvalid
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, MaxImageSize+1))
	if err != nil {
		return nil, msgImageInvalid
	}
	if len(data) > MaxImageSize {
		return nil, msgImageTooBig
	}
	if !strings.HasPrefix(mimetype.Detect(data).String(), "image/") {
		return nil, msgImageInvalid
	}
	return &postPort.ImageUpload{Filename: filepath.Base(fh.Filename), Data: data}, ""
}
