// Package adapters provides the MongoDB repository implementation for the tasks feature.
package adapters

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"todo_backend/internal/feature/tasks/domain/entity"
	"todo_backend/internal/feature/tasks/usecase"
)

// taskMongo is the MongoDB implementation of usecase.TaskRepository.
type taskMongo struct {
	tasks *mongo.Collection
}

// Compile-time check to ensure taskMongo implements TaskRepository.
var _ usecase.TaskRepository = (*taskMongo)(nil)

// NewTaskMongo creates a taskMongo backed by the given tasks collection.
func NewTaskMongo(tasks *mongo.Collection) *taskMongo {
	return &taskMongo{tasks: tasks}
}

// IsValidID reports whether id is a 24-character hex ObjectID.
func (r *taskMongo) IsValidID(id string) bool {
	_, err := bson.ObjectIDFromHex(id)
	return err == nil
}

// ListByUser returns every task whose user_email equals userEmail.
func (r *taskMongo) ListByUser(ctx context.Context, userEmail string) ([]entity.Task, error) {
	cur, err := r.tasks.Find(ctx, bson.M{"user_email": userEmail})
	if err != nil {
		return nil, err
	}

	var docs []TaskDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	tasks := make([]entity.Task, len(docs))
	for i := range docs {
		tasks[i] = docs[i].ToEntity()
	}
	return tasks, nil
}

// Create inserts the task and sets task.ID to the generated identifier.
func (r *taskMongo) Create(ctx context.Context, task *entity.Task) error {
	if task == nil {
		return errors.New("task is nil")
	}

	res, err := r.tasks.InsertOne(ctx, TaskDocumentFromEntity(task))
	if err != nil {
		return err
	}

	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		task.ID = id.Hex()
	}
	return nil
}

// Update sets the patched fields and returns the matched count.
func (r *taskMongo) Update(ctx context.Context, id string, patch entity.TaskPatch) (int64, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return 0, usecase.ErrInvalidTaskID
	}
	if patch.IsEmpty() {
		return 0, usecase.ErrNoFieldsToUpdate
	}

	res, err := r.tasks.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": patchToSet(patch)})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

// Delete removes the task and returns the deleted count.
func (r *taskMongo) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return 0, usecase.ErrInvalidTaskID
	}

	res, err := r.tasks.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
