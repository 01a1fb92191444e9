package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mycontact/contacts-api/internal/core/domain"
	"github.com/mycontact/contacts-api/internal/core/ports"
)

const contactCollection = "contacts"

type ContactRepository struct {
	coll *mongo.Collection
}

func NewContactRepository(db *mongo.Database) *ContactRepository {
	return &ContactRepository{coll: db.Collection(contactCollection)}
}

type mongoContact struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	OwnerID   primitive.ObjectID `bson:"owner_id"`
	FirstName string             `bson:"first_name"`
	LastName  string             `bson:"last_name"`
	Phone     string             `bson:"phone"`
	Email     string             `bson:"email,omitempty"`
	Address   string             `bson:"address,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (m mongoContact) toDomain() *domain.Contact {
	return &domain.Contact{
		ID:        m.ID.Hex(),
		OwnerID:   m.OwnerID.Hex(),
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Phone:     m.Phone,
		Email:     m.Email,
		Address:   m.Address,
		CreatedAt: m.CreatedAt.UTC(),
		UpdatedAt: m.UpdatedAt.UTC(),
	}
}

// ownerFilter builds the base filter every single-record operation uses.
// A malformed contact or owner id cannot match anything, which is exactly
// the not-found behavior the access guard requires.
func ownerFilter(ownerID, id string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrContactNotFound
	}
	owner, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, domain.ErrContactNotFound
	}
	return bson.M{"_id": oid, "owner_id": owner}, nil
}

func (r *ContactRepository) Insert(ctx context.Context, contact *domain.Contact) (*domain.Contact, error) {
	owner, err := primitive.ObjectIDFromHex(contact.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("insert contact: invalid owner id: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	doc := mongoContact{
		OwnerID:   owner,
		FirstName: contact.FirstName,
		LastName:  contact.LastName,
		Phone:     contact.Phone,
		Email:     contact.Email,
		Address:   contact.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert contact: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *ContactRepository) FindByID(ctx context.Context, ownerID, id string) (*domain.Contact, error) {
	filter, err := ownerFilter(ownerID, id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m mongoContact
	if err := r.coll.FindOne(ctx, filter).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrContactNotFound
		}
		return nil, fmt.Errorf("find contact: %w", err)
	}
	return m.toDomain(), nil
}

// List returns a page of the owner's contacts plus the total match count.
// Search is a case-insensitive substring across first name, last name, and
// phone; the term is regex-quoted so user input cannot alter the pattern.
func (r *ContactRepository) List(ctx context.Context, f ports.ListContactsFilter) ([]*domain.Contact, int64, error) {
	owner, err := primitive.ObjectIDFromHex(f.OwnerID)
	if err != nil {
		return nil, 0, fmt.Errorf("list contacts: invalid owner id: %w", err)
	}

	filter := bson.M{"owner_id": owner}
	if f.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(f.Search), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"first_name": pattern},
			bson.M{"last_name": pattern},
			bson.M{"phone": pattern},
		}
	}

	order := 1
	if !f.Ascending {
		order = -1
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count contacts: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: f.SortField, Value: order}}).
		SetSkip(int64((f.Page - 1) * f.Limit)).
		SetLimit(int64(f.Limit))

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list contacts: %w", err)
	}
	defer cursor.Close(ctx)

	var contacts []*domain.Contact
	for cursor.Next(ctx) {
		var m mongoContact
		if err := cursor.Decode(&m); err != nil {
			return nil, 0, fmt.Errorf("decode contact: %w", err)
		}
		contacts = append(contacts, m.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, fmt.Errorf("list contacts: %w", err)
	}

	return contacts, total, nil
}

// Update applies only the provided fields via $set and returns the updated
// document. No match (missing id or foreign owner) is ErrContactNotFound.
func (r *ContactRepository) Update(ctx context.Context, ownerID, id string, upd ports.ContactUpdate) (*domain.Contact, error) {
	filter, err := ownerFilter(ownerID, id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.FirstName != nil {
		set["first_name"] = *upd.FirstName
	}
	if upd.LastName != nil {
		set["last_name"] = *upd.LastName
	}
	if upd.Phone != nil {
		set["phone"] = *upd.Phone
	}
	if upd.Email != nil {
		set["email"] = *upd.Email
	}
	if upd.Address != nil {
		set["address"] = *upd.Address
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var m mongoContact
	if err := r.coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrContactNotFound
		}
		return nil, fmt.Errorf("update contact: %w", err)
	}
	return m.toDomain(), nil
}

func (r *ContactRepository) Delete(ctx context.Context, ownerID, id string) (*domain.Contact, error) {
	filter, err := ownerFilter(ownerID, id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m mongoContact
	if err := r.coll.FindOneAndDelete(ctx, filter).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrContactNotFound
		}
		return nil, fmt.Errorf("delete contact: %w", err)
	}
	return m.toDomain(), nil
}

func (r *ContactRepository) DeleteAll(ctx context.Context, ownerID string) (int64, error) {
	owner, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return 0, fmt.Errorf("delete all contacts: invalid owner id: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteMany(ctx, bson.M{"owner_id": owner})
	if err != nil {
		return 0, fmt.Errorf("delete all contacts: %w", err)
	}
	return res.DeletedCount, nil
}
