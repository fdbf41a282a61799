package filesystem

import (
	"context"
	"io/fs"
	"testing"
	"testing/fstest"

	"jugsite/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestDocumentStore_Get(t *testing.T) {
	fsys := fstest.MapFS{
		"events/20170214-jigsaw.yaml": &fstest.MapFile{Data: []byte("title: jigsaw\n")},
		"sponsors/ippon.yml":          &fstest.MapFile{Data: []byte("type: GOLD\n")},
		"talks/both.yaml":             &fstest.MapFile{Data: []byte("title: yaml\n")},
		"talks/both.yml":              &fstest.MapFile{Data: []byte("title: yml\n")},
		"talks/folder.yaml":           &fstest.MapFile{Mode: fs.ModeDir},
	}
	store := NewDocumentStore(fsys)
	ctx := context.Background()

	tests := []struct {
		name        string
		contentType domain.ContentType
		id          string
		want        string
		wantErr     error
		wantAnyErr  bool
	}{
		{name: "yaml extension", contentType: domain.ContentEvents, id: "20170214-jigsaw", want: "title: jigsaw\n"},
		{name: "yml fallback", contentType: domain.ContentSponsors, id: "ippon", want: "type: GOLD\n"},
		{name: "yaml preferred", contentType: domain.ContentTalks, id: "both", want: "title: yaml\n"},
		{name: "missing", contentType: domain.ContentEvents, id: "none", wantErr: domain.ErrNotFound},
		{name: "wrong content type dir", contentType: domain.ContentSpeakers, id: "20170214-jigsaw", wantErr: domain.ErrNotFound},
		{name: "traversal", contentType: domain.ContentEvents, id: "../talks/both", wantErr: domain.ErrInvalidID},
		{name: "empty id", contentType: domain.ContentEvents, id: "", wantErr: domain.ErrInvalidID},
		{name: "unknown content type", contentType: domain.ContentType("venues"), id: "x", wantAnyErr: true},
		{name: "directory is not a document", contentType: domain.ContentTalks, id: "folder", wantAnyErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.Get(ctx, tt.contentType, tt.id)
			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
				require.Nil(t, got)
			case tt.wantAnyErr:
				require.Error(t, err)
				require.NotErrorIs(t, err, domain.ErrNotFound)
			default:
				require.NoError(t, err)
				require.Equal(t, tt.want, string(got))
			}
		})
	}
}

func TestDocumentStore_GetCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewDocumentStore(fstest.MapFS{}).Get(ctx, domain.ContentTalks, "x")
	require.ErrorIs(t, err, context.Canceled)
}
