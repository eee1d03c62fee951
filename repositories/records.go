package repositories

import (
	"chat-shell/domain"
	pb "chat-shell/proto/directory"
	"time"
)

// Converters between the domain and the stored protobuf records. Timestamps are stored as UnixNano.

func fromUser(u domain.User) *pb.User {
	return &pb.User{Id: u.ID, Name: u.Name, Email: u.Email, Avatar: u.Avatar, Status: string(u.Status)}
}

func toUser(u *pb.User) domain.User {
	return domain.User{ID: u.Id, Name: u.Name, Email: u.Email, Avatar: u.Avatar, Status: domain.Status(u.Status)}
}

func fromMessage(m domain.Message) *pb.Message {
	return &pb.Message{
		Id:         m.ID,
		Content:    m.Content,
		SenderId:   m.SenderID,
		ReceiverId: m.ReceiverID,
		At:         m.Timestamp.UnixNano(),
		IsRead:     m.IsRead,
	}
}

func toMessage(m *pb.Message) domain.Message {
	return domain.Message{
		ID:         m.Id,
		Content:    m.Content,
		SenderID:   m.SenderId,
		ReceiverID: m.ReceiverId,
		Timestamp:  time.Unix(0, m.At).UTC(),
		IsRead:     m.IsRead,
	}
}

func fromGroup(g domain.Group) *pb.Group {
	return &pb.Group{
		Id:          g.ID,
		Name:        g.Name,
		Avatar:      g.Avatar,
		LastMessage: g.LastMessage,
		UnreadCount: uint32(g.UnreadCount),
		At:          g.Timestamp.UnixNano(),
	}
}

func toGroup(g *pb.Group) domain.Group {
	return domain.Group{
		ID:          g.Id,
		Name:        g.Name,
		Avatar:      g.Avatar,
		LastMessage: g.LastMessage,
		UnreadCount: uint(g.UnreadCount),
		Timestamp:   time.Unix(0, g.At).UTC(),
	}
}

func fromChronicle(c domain.Chronicle) *pb.Chronicle {
	return &pb.Chronicle{
		Id:       c.ID,
		Author:   c.Author,
		Content:  c.Content,
		Avatar:   c.Avatar,
		At:       c.Timestamp.UnixNano(),
		IsViewed: c.IsViewed,
	}
}

func toChronicle(c *pb.Chronicle) domain.Chronicle {
	return domain.Chronicle{
		ID:        c.Id,
		Author:    c.Author,
		Content:   c.Content,
		Avatar:    c.Avatar,
		Timestamp: time.Unix(0, c.At).UTC(),
		IsViewed:  c.IsViewed,
	}
}

func fromOwner(o domain.Owner) *pb.Owner {
	return &pb.Owner{Name: o.Name, Email: o.Email, Phone: o.Phone, Status: o.Status, Bio: o.Bio, Avatar: o.Avatar}
}

func toOwner(o *pb.Owner) domain.Owner {
	return domain.Owner{Name: o.Name, Email: o.Email, Phone: o.Phone, Status: o.Status, Bio: o.Bio, Avatar: o.Avatar}
}
