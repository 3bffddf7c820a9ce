package adapters

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"todo_backend/internal/feature/tasks/domain/entity"
)

// TaskDocument is the BSON layout of the tasks collection.
type TaskDocument struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	Title     string        `bson:"title"`
	Completed bool          `bson:"completed"`
	UserEmail string        `bson:"user_email"`
}

// ToEntity converts the stored document to a domain entity.
func (d *TaskDocument) ToEntity() entity.Task {
	return entity.Task{
		ID:        d.ID.Hex(),
		Title:     d.Title,
		Completed: d.Completed,
		UserEmail: d.UserEmail,
	}
}

// TaskDocumentFromEntity converts a domain entity to a document.
// An empty or malformed ID is left zero so the driver generates one.
func TaskDocumentFromEntity(t *entity.Task) *TaskDocument {
	doc := &TaskDocument{
		Title:     t.Title,
		Completed: t.Completed,
		UserEmail: t.UserEmail,
	}
	if id, err := bson.ObjectIDFromHex(t.ID); err == nil {
		doc.ID = id
	}
	return doc
}

// patchToSet builds the $set document for a partial update.
func patchToSet(p entity.TaskPatch) bson.M {
	set := bson.M{}
	if p.Completed != nil {
		set["completed"] = *p.Completed
	}
	if p.Title != nil {
		set["title"] = *p.Title
	}
	return set
}
