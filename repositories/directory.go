//go:generate go run go.uber.org/mock/mockgen -source=directory.go -destination=../mocks/mock_directory_repository.go -package=mocks
package repositories

import (
	"chat-shell/domain"
	"chat-shell/errors"
	"chat-shell/fixtures"
	pb "chat-shell/proto/directory"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
	"google.golang.org/protobuf/proto"
)

// IDirectoryRepository exposes the sample data read-only.
type IDirectoryRepository interface {
	Users() ([]domain.User, error)
	Messages() ([]domain.Message, error)
	Groups() ([]domain.Group, error)
	Chronicles() ([]domain.Chronicle, error)
	Owner() (domain.Owner, error)
}

const (
	userPrefix      = "user:"
	messagePrefix   = "msg:"
	groupPrefix     = "group:"
	chroniclePrefix = "chronicle:"
	ownerKey        = "owner"
)

// DirectoryRepository keeps the seed in an in-memory BadgerDB.
// It is filled once by LoadDataset and never written afterwards; nothing reaches the disk.
type DirectoryRepository struct {
	db     *badger.DB
	log    *slog.Logger
	closed atomic.Bool
}

func OpenDirectory(log *slog.Logger) (*DirectoryRepository, error) {
	db, err := badger.Open(badger.DefaultOptions("").
		WithInMemory(true).
		WithLogger(nil))
	if err != nil {
		return nil, fmt.Errorf("opening in-memory directory: %w", err)
	}
	return &DirectoryRepository{db: db, log: log}, nil
}

// LoadDataset writes every record of the dataset in a single transaction.
// The key is "{prefix}{position:04d}:{id}" so that a prefix scan returns the seed order.
func (d *DirectoryRepository) LoadDataset(data fixtures.Dataset) error {
	if d.closed.Load() {
		return errors.ErrDirectoryClosed
	}
	entries := map[string]proto.Message{ownerKey: fromOwner(data.Owner)}
	for i, u := range data.Users {
		entries[positionKey(userPrefix, i, u.ID)] = fromUser(u)
	}
	for i, m := range data.Messages {
		entries[positionKey(messagePrefix, i, m.ID)] = fromMessage(m)
	}
	for i, g := range data.Groups {
		entries[positionKey(groupPrefix, i, g.ID)] = fromGroup(g)
	}
	for i, c := range data.Chronicles {
		entries[positionKey(chroniclePrefix, i, c.ID)] = fromChronicle(c)
	}

	err := d.db.Update(func(txn *badger.Txn) error {
		for key, value := range entries {
			bytes, err := proto.Marshal(value)
			if err != nil {
				return err
			}
			if err = txn.Set([]byte(key), bytes); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("loading dataset: %w", err)
	}
	d.log.Debug("Directory loaded",
		"users", len(data.Users),
		"messages", len(data.Messages),
		"groups", len(data.Groups),
		"chronicles", len(data.Chronicles))
	return nil
}

func (d *DirectoryRepository) Users() ([]domain.User, error) {
	records, err := scan[pb.User](d, userPrefix)
	return lo.Map(records, func(u *pb.User, _ int) domain.User { return toUser(u) }), err
}

func (d *DirectoryRepository) Messages() ([]domain.Message, error) {
	records, err := scan[pb.Message](d, messagePrefix)
	return lo.Map(records, func(m *pb.Message, _ int) domain.Message { return toMessage(m) }), err
}

func (d *DirectoryRepository) Groups() ([]domain.Group, error) {
	records, err := scan[pb.Group](d, groupPrefix)
	return lo.Map(records, func(g *pb.Group, _ int) domain.Group { return toGroup(g) }), err
}

func (d *DirectoryRepository) Chronicles() ([]domain.Chronicle, error) {
	records, err := scan[pb.Chronicle](d, chroniclePrefix)
	return lo.Map(records, func(c *pb.Chronicle, _ int) domain.Chronicle { return toChronicle(c) }), err
}

func (d *DirectoryRepository) Owner() (domain.Owner, error) {
	if d.closed.Load() {
		return domain.Owner{}, errors.ErrDirectoryClosed
	}
	var owner pb.Owner
	err := d.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(ownerKey))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return proto.Unmarshal(val, &owner)
		})
	})
	if err != nil {
		return domain.Owner{}, fmt.Errorf("reading owner: %w", err)
	}
	return toOwner(&owner), nil
}

func (d *DirectoryRepository) Close() error {
	if d.closed.Swap(true) {
		return nil
	}
	return d.db.Close()
}

// Entry is a record as stored, before decoding.
type Entry struct {
	Key   string
	Value []byte
}

// Inspect lists the raw records under prefix in key order. An empty prefix lists everything.
func (d *DirectoryRepository) Inspect(prefix string) ([]Entry, error) {
	var entries []Entry
	err := d.each(prefix, func(key, val []byte) error {
		entries = append(entries, Entry{Key: string(key), Value: append([]byte(nil), val...)})
		return nil
	})
	return entries, err
}

// scan decodes every value under prefix, in key order.
func scan[T any, P interface {
	*T
	proto.Message
}](d *DirectoryRepository, prefix string) ([]P, error) {
	var records []P
	err := d.each(prefix, func(_, val []byte) error {
		record := P(new(T))
		if err := proto.Unmarshal(val, record); err != nil {
			return err
		}
		records = append(records, record)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// each calls fn for every key under prefix. val is only valid during the call.
func (d *DirectoryRepository) each(prefix string, fn func(key, val []byte) error) error {
	if d.closed.Load() {
		return errors.ErrDirectoryClosed
	}
	err := d.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		p := []byte(prefix)
		for it.Seek(p); it.ValidForPrefix(p); it.Next() {
			item := it.Item()
			if err := item.Value(func(val []byte) error { return fn(item.Key(), val) }); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("scanning %q: %w", prefix, err)
	}
	return nil
}

func positionKey(prefix string, position int, id string) string {
	return fmt.Sprintf("%s%04d:%s", prefix, position, id)
}
