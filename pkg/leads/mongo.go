package leads

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/plinyoo/starfield/pkg/cache"
	"github.com/plinyoo/starfield/pkg/errors"
)

// MongoCollection is the collection leads are written to.
const MongoCollection = "leads"

// mongoLead is the stored document. IDs are kept as strings so the
// collection reads naturally from the mongo shell.
type mongoLead struct {
	ID         string `bson:"_id"`
	Submission `bson:",inline"`
	CreatedAt  time.Time `bson:"created_at"`
}

func (d mongoLead) lead() (Lead, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return Lead{}, err
	}
	return Lead{ID: id, Submission: d.Submission, CreatedAt: d.CreatedAt}, nil
}

// MongoStore keeps leads in a MongoDB collection.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// OpenMongo connects to uri, pings the deployment and ensures the
// created_at index exists.
func OpenMongo(ctx context.Context, uri, database string) (*MongoStore, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "connect mongo")
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "ping mongo")
	}

	s := &MongoStore{client: client, coll: client.Database(database).Collection(MongoCollection)}
	_, err = s.coll.Indexes().CreateOne(connectCtx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}},
	})
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "create index")
	}
	return s, nil
}

func (s *MongoStore) Save(ctx context.Context, l *Lead) error {
	doc := mongoLead{ID: l.ID.String(), Submission: l.Submission, CreatedAt: l.CreatedAt.UTC()}
	_, err := s.coll.InsertOne(ctx, doc)
	switch {
	case err == nil:
		return nil
	case mongo.IsDuplicateKeyError(err):
		return errors.Wrap(errors.ErrCodeConflict, err, "lead %s already exists", l.ID)
	case mongo.IsNetworkError(err) || mongo.IsTimeout(err):
		return cache.Retryable(errors.Wrap(errors.ErrCodeStorage, err, "save lead %s", l.ID))
	default:
		return errors.Wrap(errors.ErrCodeStorage, err, "save lead %s", l.ID)
	}
}

func (s *MongoStore) List(ctx context.Context, opts ListOptions) ([]Lead, error) {
	filter := bson.D{}
	if opts.FormType != "" {
		filter = bson.D{{Key: "form_type", Value: string(opts.FormType)}}
	}
	findOpts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: 1}}).
		SetLimit(int64(opts.limit()))

	cur, err := s.coll.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "list leads")
	}
	var docs []mongoLead
	if err := cur.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "decode leads")
	}
	out := make([]Lead, 0, len(docs))
	for _, d := range docs {
		l, err := d.lead()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeStorage, err, "parse lead id %q", d.ID)
		}
		out = append(out, l)
	}
	return out, nil
}

func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

var _ Store = (*MongoStore)(nil)
