package db

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/alipouryousefi/task-manager-back/internal/core/domain"
	"github.com/alipouryousefi/task-manager-back/internal/core/ports"
)

type TaskRepository struct {
	collection *mongo.Collection
}

type todoDoc struct {
	Text      string `bson:"text"`
	Completed bool   `bson:"completed"`
}

type taskDoc struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty"`
	Title         string               `bson:"title"`
	Description   *string              `bson:"description,omitempty"`
	Priority      string               `bson:"priority"`
	Status        string               `bson:"status"`
	DueDate       time.Time            `bson:"dueDate"`
	AssignedTo    []primitive.ObjectID `bson:"assignedTo"`
	CreatedBy     primitive.ObjectID   `bson:"createdBy"`
	Attachments   []string             `bson:"attachments"`
	TodoChecklist []todoDoc            `bson:"todoChecklist"`
	Progress      int                  `bson:"progress"`
	CreatedAt     time.Time            `bson:"createdAt"`
	UpdatedAt     time.Time            `bson:"updatedAt"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(database *mongo.Database) *TaskRepository {
	return &TaskRepository{collection: database.Collection(tasksCollection)}
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (domain.Task, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.Task{}, domain.ErrTaskNotFound
	}

	var doc taskDoc
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}

	return mapTaskDocToDomainTask(doc), nil
}

func (r *TaskRepository) List(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	query, err := buildTaskQuery(filter)
	if err != nil {
		return nil, err
	}

	cursor, err := r.collection.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}

	var docs []taskDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(docs))
	for _, doc := range docs {
		tasks = append(tasks, mapTaskDocToDomainTask(doc))
	}

	return tasks, nil
}

func (r *TaskRepository) Count(ctx context.Context, filter domain.TaskFilter) (int64, error) {
	query, err := buildTaskQuery(filter)
	if err != nil {
		return 0, err
	}
	return r.collection.CountDocuments(ctx, query)
}

func (r *TaskRepository) Create(ctx context.Context, task domain.Task) (domain.Task, error) {
	assignedTo, err := toObjectIDs(task.AssignedTo)
	if err != nil {
		return domain.Task{}, err
	}

	createdBy, err := primitive.ObjectIDFromHex(task.CreatedBy)
	if err != nil {
		return domain.Task{}, err
	}

	now := time.Now().UTC()
	doc := taskDoc{
		ID:            primitive.NewObjectID(),
		Title:         task.Title,
		Description:   task.Description,
		Priority:      string(task.Priority),
		Status:        string(task.Status),
		DueDate:       task.DueDate,
		AssignedTo:    assignedTo,
		CreatedBy:     createdBy,
		Attachments:   emptyIfNil(task.Attachments),
		TodoChecklist: mapTodoItemsToDocs(task.TodoChecklist),
		Progress:      task.Progress,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return domain.Task{}, err
	}

	return mapTaskDocToDomainTask(doc), nil
}

func (r *TaskRepository) Update(ctx context.Context, task domain.Task) (domain.Task, error) {
	objectID, err := primitive.ObjectIDFromHex(task.ID)
	if err != nil {
		return domain.Task{}, domain.ErrTaskNotFound
	}

	assignedTo, err := toObjectIDs(task.AssignedTo)
	if err != nil {
		return domain.Task{}, err
	}

	update := bson.M{"$set": bson.M{
		"title":         task.Title,
		"description":   task.Description,
		"priority":      string(task.Priority),
		"status":        string(task.Status),
		"dueDate":       task.DueDate,
		"assignedTo":    assignedTo,
		"attachments":   emptyIfNil(task.Attachments),
		"todoChecklist": mapTodoItemsToDocs(task.TodoChecklist),
		"progress":      task.Progress,
		"updatedAt":     time.Now().UTC(),
	}}

	var doc taskDoc
	err = r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}

	return mapTaskDocToDomainTask(doc), nil
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrTaskNotFound
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return domain.ErrTaskNotFound
	}

	return nil
}

// buildTaskQuery translates a domain filter into a bson query. An assignee
// scope matches tasks whose assignedTo array contains the user id.
func buildTaskQuery(filter domain.TaskFilter) (bson.M, error) {
	query := bson.M{}
	if filter.Status != nil {
		query["status"] = string(*filter.Status)
	}
	if filter.AssignedTo != "" {
		objectID, err := primitive.ObjectIDFromHex(filter.AssignedTo)
		if err != nil {
			return nil, domain.ErrUserNotFound
		}
		query["assignedTo"] = objectID
	}
	return query, nil
}

func toObjectIDs(ids []string) ([]primitive.ObjectID, error) {
	objectIDs := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		objectID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, domain.ErrUserNotFound
		}
		objectIDs = append(objectIDs, objectID)
	}
	return objectIDs, nil
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func mapTodoItemsToDocs(items []domain.TodoItem) []todoDoc {
	docs := make([]todoDoc, 0, len(items))
	for _, item := range items {
		docs = append(docs, todoDoc{Text: item.Text, Completed: item.Completed})
	}
	return docs
}

func mapTaskDocToDomainTask(doc taskDoc) domain.Task {
	assignedTo := make([]string, 0, len(doc.AssignedTo))
	for _, id := range doc.AssignedTo {
		assignedTo = append(assignedTo, id.Hex())
	}

	checklist := make([]domain.TodoItem, 0, len(doc.TodoChecklist))
	for _, item := range doc.TodoChecklist {
		checklist = append(checklist, domain.TodoItem{Text: item.Text, Completed: item.Completed})
	}

	return domain.Task{
		ID:            doc.ID.Hex(),
		Title:         doc.Title,
		Description:   doc.Description,
		Priority:      domain.TaskPriority(doc.Priority),
		Status:        domain.TaskStatus(doc.Status),
		DueDate:       doc.DueDate,
		AssignedTo:    assignedTo,
		CreatedBy:     doc.CreatedBy.Hex(),
		Attachments:   doc.Attachments,
		TodoChecklist: checklist,
		Progress:      doc.Progress,
		CreatedAt:     doc.CreatedAt,
		UpdatedAt:     doc.UpdatedAt,
	}
}
