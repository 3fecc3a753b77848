package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoStore keeps each collection as a native MongoDB collection.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// OpenMongo connects to uri and pings the primary before returning.
func OpenMongo(ctx context.Context, uri, dbName string) (*MongoStore, error) {
	if uri == "" || dbName == "" {
		return nil, errors.New("DATABASE_URL and DATABASE_NAME are required")
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return &MongoStore{client: client, db: client.Database(dbName)}, nil
}

func (s *MongoStore) Name() string { return "mongo" }

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *MongoStore) FindOne(ctx context.Context, collection string, filter Filter) (Document, error) {
	var raw bson.M
	err := s.db.Collection(collection).FindOne(ctx, bsonFilter(filter)).Decode(&raw)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find one in %s: %w", collection, err)
	}
	return fromBSON(raw), nil
}

func (s *MongoStore) Find(ctx context.Context, collection string, filter Filter) ([]Document, error) {
	cur, err := s.db.Collection(collection).Find(ctx, bsonFilter(filter))
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", collection, err)
	}
	defer cur.Close(ctx)

	var raws []bson.M
	if err := cur.All(ctx, &raws); err != nil {
		return nil, fmt.Errorf("read %s cursor: %w", collection, err)
	}

	docs := make([]Document, 0, len(raws))
	for _, raw := range raws {
		docs = append(docs, fromBSON(raw))
	}
	return docs, nil
}

func (s *MongoStore) Count(ctx context.Context, collection string, filter Filter) (int64, error) {
	n, err := s.db.Collection(collection).CountDocuments(ctx, bsonFilter(filter))
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", collection, err)
	}
	return n, nil
}

func (s *MongoStore) InsertOne(ctx context.Context, collection string, doc Document) (Document, error) {
	id, body := splitID(doc)
	stored := withID(id, body)
	if _, err := s.db.Collection(collection).InsertOne(ctx, bson.M(stored)); err != nil {
		return nil, fmt.Errorf("insert into %s: %w", collection, err)
	}
	return stored, nil
}

func (s *MongoStore) InsertMany(ctx context.Context, collection string, docs []Document) error {
	if len(docs) == 0 {
		return nil
	}
	batch := make([]any, 0, len(docs))
	for _, doc := range docs {
		id, body := splitID(doc)
		batch = append(batch, bson.M(withID(id, body)))
	}
	if _, err := s.db.Collection(collection).InsertMany(ctx, batch); err != nil {
		return fmt.Errorf("insert many into %s: %w", collection, err)
	}
	return nil
}

func (s *MongoStore) UpdateFields(ctx context.Context, collection, id string, fields Document) error {
	_, body := splitID(fields)
	res, err := s.db.Collection(collection).UpdateOne(ctx, idFilter(id), bson.M{"$set": bson.M(body)})
	if err != nil {
		return fmt.Errorf("update %s/%s: %w", collection, id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) Collections(ctx context.Context) ([]string, error) {
	names, err := s.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	return names, nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func bsonFilter(filter Filter) bson.M {
	out := bson.M{}
	for k, v := range filter {
		if k == IDField {
			if id, ok := v.(string); ok {
				out[k] = idValue(id)
				continue
			}
		}
		out[k] = v
	}
	return out
}

// idFilter matches documents written by this package (string ids) as well as
// documents created by other tools with native ObjectIDs.
func idFilter(id string) bson.M {
	return bson.M{IDField: idValue(id)}
}

func idValue(id string) any {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return bson.M{"$in": bson.A{oid, id}}
	}
	return id
}

func fromBSON(raw bson.M) Document {
	return Document(fromBSONValue(map[string]any(raw)).(map[string]any))
}

func fromBSONValue(v any) any {
	switch t := v.(type) {
	case primitive.ObjectID:
		return t.Hex()
	case primitive.DateTime:
		return t.Time().UTC()
	case primitive.Decimal128:
		return t.String()
	case int32:
		return int64(t)
	case bson.M:
		return fromBSONValue(map[string]any(t))
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = fromBSONValue(val)
		}
		return out
	case bson.D:
		out := make(map[string]any, len(t))
		for _, e := range t {
			out[e.Key] = fromBSONValue(e.Value)
		}
		return out
	case bson.A:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = fromBSONValue(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = fromBSONValue(val)
		}
		return out
	default:
		return v
	}
}
