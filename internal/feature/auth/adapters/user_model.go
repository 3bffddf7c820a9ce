package adapters

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"todo_backend/internal/feature/auth/domain/entity"
)

// UserDocument is the BSON layout of the users collection.
type UserDocument struct {
	ID       bson.ObjectID `bson:"_id,omitempty"`
	Email    string        `bson:"email"`
	Password string        `bson:"password"`
}

// ToEntity converts the stored document to a domain entity.
func (d *UserDocument) ToEntity() *entity.User {
	return &entity.User{
		ID:       d.ID.Hex(),
		Email:    d.Email,
		Password: d.Password,
	}
}

// UserDocumentFromEntity converts a domain entity to a document.
// An empty or malformed ID is left zero so the driver generates one.
func UserDocumentFromEntity(u *entity.User) *UserDocument {
	doc := &UserDocument{Email: u.Email, Password: u.Password}
	if id, err := bson.ObjectIDFromHex(u.ID); err == nil {
		doc.ID = id
	}
	return doc
}
