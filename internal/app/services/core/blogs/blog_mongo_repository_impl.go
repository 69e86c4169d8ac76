package blogs

import (
	"context"
	"medxbay-service/internal/app/contracts"
	"medxbay-service/internal/app/models"
	"medxbay-service/internal/pkg/constvars"
	"medxbay-service/internal/pkg/dto/requests"
	"medxbay-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BlogMongoRepository struct {
	Collection *mongo.Collection
}

func NewBlogMongoRepository(db *mongo.Client, dbName string) contracts.BlogRepository {
	return &BlogMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionBlogs),
	}
}

func (r *BlogMongoRepository) CreateBlog(ctx context.Context, blog *models.Blog) (string, error) {
	now := time.Now()
	blog.CreatedAt = now
	blog.UpdatedAt = now
	result, err := r.Collection.InsertOne(ctx, blog)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *BlogMongoRepository) FindByID(ctx context.Context, blogID string) (*models.Blog, error) {
	objectID, err := primitive.ObjectIDFromHex(blogID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var blog models.Blog
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&blog)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &blog, nil
}

// FindVerified lists the public feed: admin-set priority first, newest after.
func (r *BlogMongoRepository) FindVerified(ctx context.Context, params *requests.QueryParams) ([]models.Blog, int, error) {
	filter := bson.M{"verificationStatus": constvars.BlogVerificationVerified}
	if params.Category != "" {
		filter["category"] = params.Category
	}
	sort := bson.D{{Key: "priority", Value: -1}, {Key: "createdAt", Value: -1}}
	return r.findPage(ctx, filter, sort, params)
}

func (r *BlogMongoRepository) FindByAuthor(ctx context.Context, doctorID string, params *requests.QueryParams) ([]models.Blog, int, error) {
	filter := bson.M{"authorDoctorId": doctorID}
	sort := bson.D{{Key: "createdAt", Value: -1}}
	return r.findPage(ctx, filter, sort, params)
}

func (r *BlogMongoRepository) FindPending(ctx context.Context, params *requests.QueryParams) ([]models.Blog, int, error) {
	filter := bson.M{"verificationStatus": constvars.BlogVerificationPending}
	sort := bson.D{{Key: "createdAt", Value: 1}}
	return r.findPage(ctx, filter, sort, params)
}

func (r *BlogMongoRepository) findPage(ctx context.Context, filter bson.M, sort bson.D, params *requests.QueryParams) ([]models.Blog, int, error) {
	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	opts := options.Find().
		SetSort(sort).
		SetSkip(int64((params.Page - 1) * params.PageSize)).
		SetLimit(int64(params.PageSize))

	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var blogList []models.Blog
	if err := cursor.All(ctx, &blogList); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return blogList, int(total), nil
}

func (r *BlogMongoRepository) UpdateBlog(ctx context.Context, blog *models.Blog) error {
	objectID, err := primitive.ObjectIDFromHex(blog.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	blog.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"title":              blog.Title,
		"body":               blog.Body,
		"category":           blog.Category,
		"tags":               blog.Tags,
		"verificationStatus": blog.VerificationStatus,
		"priority":           blog.Priority,
		"updatedAt":          blog.UpdatedAt,
	}}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *BlogMongoRepository) CountPending(ctx context.Context) (int64, error) {
	count, err := r.Collection.CountDocuments(ctx, bson.M{"verificationStatus": constvars.BlogVerificationPending})
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return count, nil
}
