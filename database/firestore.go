package database

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreStore maps collections onto Firestore collections. The Firestore
// document id is exposed as the document's _id.
type FirestoreStore struct {
	client    *firestore.Client
	projectID string
}

// OpenFirestore creates a client for projectID. When credentialsFile is empty
// Application Default Credentials are used.
func OpenFirestore(ctx context.Context, projectID, credentialsFile string) (*FirestoreStore, error) {
	if projectID == "" {
		return nil, errors.New("FIRESTORE_PROJECT_ID is required")
	}

	var (
		client *firestore.Client
		err    error
	)
	if credentialsFile != "" {
		client, err = firestore.NewClient(ctx, projectID, option.WithCredentialsFile(credentialsFile))
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}

	return &FirestoreStore{client: client, projectID: projectID}, nil
}

func (s *FirestoreStore) Name() string { return "firestore" }

// Ping lists collections, since Firestore has no dedicated ping call.
func (s *FirestoreStore) Ping(ctx context.Context) error {
	if _, err := s.client.Collections(ctx).GetAll(); err != nil {
		return fmt.Errorf("firestore ping failed: %w", err)
	}
	return nil
}

func (s *FirestoreStore) query(collection string, filter Filter) (firestore.Query, string) {
	q := s.client.Collection(collection).Query
	id := ""
	for k, v := range filter {
		if k == IDField {
			id = fmt.Sprint(v)
			continue
		}
		q = q.Where(k, "==", v)
	}
	return q, id
}

func (s *FirestoreStore) FindOne(ctx context.Context, collection string, filter Filter) (Document, error) {
	q, id := s.query(collection, filter)
	if id != "" {
		snap, err := s.client.Collection(collection).Doc(id).Get(ctx)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("get %s/%s: %w", collection, id, err)
		}
		doc := fromSnapshot(snap)
		want := make(Filter, len(filter))
		for k, v := range filter {
			if k != IDField {
				want[k] = v
			}
		}
		if !matches(doc, Document(want)) {
			return nil, ErrNotFound
		}
		return doc, nil
	}

	iter := q.Limit(1).Documents(ctx)
	defer iter.Stop()
	snap, err := iter.Next()
	if err != nil {
		if errors.Is(err, iterator.Done) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find one in %s: %w", collection, err)
	}
	return fromSnapshot(snap), nil
}

func (s *FirestoreStore) Find(ctx context.Context, collection string, filter Filter) ([]Document, error) {
	q, id := s.query(collection, filter)
	snaps, err := q.Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", collection, err)
	}

	docs := make([]Document, 0, len(snaps))
	for _, snap := range snaps {
		if id != "" && snap.Ref.ID != id {
			continue
		}
		docs = append(docs, fromSnapshot(snap))
	}
	return docs, nil
}

func (s *FirestoreStore) Count(ctx context.Context, collection string, filter Filter) (int64, error) {
	docs, err := s.Find(ctx, collection, filter)
	if err != nil {
		return 0, err
	}
	return int64(len(docs)), nil
}

func (s *FirestoreStore) InsertOne(ctx context.Context, collection string, doc Document) (Document, error) {
	id, body := splitID(doc)
	if _, err := s.client.Collection(collection).Doc(id).Create(ctx, map[string]any(body)); err != nil {
		return nil, fmt.Errorf("insert into %s: %w", collection, err)
	}
	return withID(id, body), nil
}

func (s *FirestoreStore) InsertMany(ctx context.Context, collection string, docs []Document) error {
	bw := s.client.BulkWriter(ctx)
	jobs := make([]*firestore.BulkWriterJob, 0, len(docs))
	for _, doc := range docs {
		id, body := splitID(doc)
		job, err := bw.Create(s.client.Collection(collection).Doc(id), map[string]any(body))
		if err != nil {
			bw.End()
			return fmt.Errorf("queue insert into %s: %w", collection, err)
		}
		jobs = append(jobs, job)
	}
	bw.End()

	for _, job := range jobs {
		if _, err := job.Results(); err != nil {
			return fmt.Errorf("insert many into %s: %w", collection, err)
		}
	}
	return nil
}

func (s *FirestoreStore) UpdateFields(ctx context.Context, collection, id string, fields Document) error {
	_, body := splitID(fields)
	if len(body) == 0 {
		return nil
	}

	updates := make([]firestore.Update, 0, len(body))
	for k, v := range body {
		updates = append(updates, firestore.Update{Path: k, Value: v})
	}

	_, err := s.client.Collection(collection).Doc(id).Update(ctx, updates)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrNotFound
		}
		return fmt.Errorf("update %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *FirestoreStore) Collections(ctx context.Context) ([]string, error) {
	refs, err := s.client.Collections(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	names := make([]string, 0, len(refs))
	for _, ref := range refs {
		names = append(names, ref.ID)
	}
	return names, nil
}

func (s *FirestoreStore) Close(context.Context) error {
	return s.client.Close()
}

func fromSnapshot(snap *firestore.DocumentSnapshot) Document {
	data := snap.Data()
	if data == nil {
		data = map[string]any{}
	}
	return withID(snap.Ref.ID, Document(data))
}
