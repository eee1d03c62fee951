package repositories

import (
	"chat-shell/errors"
	"chat-shell/fixtures"
	pb "chat-shell/proto/directory"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
)

func newDirectory(t *testing.T, data fixtures.Dataset) *DirectoryRepository {
	t.Helper()
	directory, err := OpenDirectory(logs.GetLoggerFromLevel(slog.LevelDebug))
	require.NoError(t, err)
	t.Cleanup(func() { _ = directory.Close() })
	require.NoError(t, directory.LoadDataset(data))
	return directory
}

func Test_Directory_Returns_Seed_In_Order(t *testing.T) {
	req := require.New(t)
	now := time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)
	data := fixtures.Seed(now)
	directory := newDirectory(t, data)

	users, err := directory.Users()
	req.NoError(err)
	req.Equal(data.Users, users)

	messages, err := directory.Messages()
	req.NoError(err)
	req.Equal(data.Messages, messages)

	groups, err := directory.Groups()
	req.NoError(err)
	req.Equal(data.Groups, groups)

	chronicles, err := directory.Chronicles()
	req.NoError(err)
	req.Equal(data.Chronicles, chronicles)

	owner, err := directory.Owner()
	req.NoError(err)
	req.Equal(data.Owner, owner)
}

func Test_Directory_Keeps_Order_Beyond_Ten_Records(t *testing.T) {
	req := require.New(t)
	now := time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)
	data := fixtures.Seed(now)
	base := data.Groups[0]
	data.Groups = nil
	for i := 0; i < 12; i++ {
		g := base
		g.ID = string(rune('a' + i))
		g.UnreadCount = uint(i)
		data.Groups = append(data.Groups, g)
	}
	directory := newDirectory(t, data)

	groups, err := directory.Groups()
	req.NoError(err)
	req.Len(groups, 12)
	for i, g := range groups {
		req.Equal(uint(i), g.UnreadCount)
	}
}

func Test_Directory_Closed(t *testing.T) {
	req := require.New(t)
	directory, err := OpenDirectory(slog.Default())
	req.NoError(err)
	req.NoError(directory.Close())
	req.NoError(directory.Close())

	_, err = directory.Users()
	req.ErrorIs(err, errors.ErrDirectoryClosed)
	_, err = directory.Owner()
	req.ErrorIs(err, errors.ErrDirectoryClosed)
	req.ErrorIs(directory.LoadDataset(fixtures.Seed(time.Now())), errors.ErrDirectoryClosed)
}

func Test_Directory_Inspect(t *testing.T) {
	req := require.New(t)
	directory := newDirectory(t, fixtures.Seed(time.Now()))

	entries, err := directory.Inspect("group:")
	req.NoError(err)
	req.Len(entries, 3)
	req.Equal("group:0000:1", entries[0].Key)
	req.Equal("group:0002:3", entries[2].Key)

	var group pb.Group
	req.NoError(proto.Unmarshal(entries[0].Value, &group))
	req.Equal("Family Group", group.Name)

	all, err := directory.Inspect("")
	req.NoError(err)
	req.Len(all, 13)
}
