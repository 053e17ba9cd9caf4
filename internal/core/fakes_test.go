package core

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/example/portfolio-api/internal/models"
)

// The fakes store documents as loosely typed field maps, the same shape the
// real store hands back, and materialize entities through the same
// decode-with-defaults functions the Firestore repositories use.

type fakeCollection struct {
	mu   sync.Mutex
	seq  int
	docs map[string]map[string]interface{}
}

func newFakeCollection() *fakeCollection {
	return &fakeCollection{docs: map[string]map[string]interface{}{}}
}

func (c *fakeCollection) create(fields map[string]interface{}) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	id := fmt.Sprintf("doc-%d", c.seq)
	fields["createdAt"] = time.Now().Add(time.Duration(c.seq) * time.Millisecond)
	c.docs[id] = fields
	return id
}

func (c *fakeCollection) get(id string) map[string]interface{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	doc, ok := c.docs[id]
	if !ok {
		return nil
	}
	out := map[string]interface{}{}
	for k, v := range doc {
		out[k] = v
	}
	return out
}

func (c *fakeCollection) merge(id string, fields map[string]interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	doc, ok := c.docs[id]
	if !ok {
		doc = map[string]interface{}{}
		c.docs[id] = doc
	}
	for k, v := range fields {
		doc[k] = v
	}
}

func (c *fakeCollection) delete(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.docs, id)
}

// ids returns document IDs ordered by createdAt descending, matching the
// store-side ordering the real repositories query with.
func (c *fakeCollection) ids() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	ids := make([]string, 0, len(c.docs))
	for id := range c.docs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		ti, _ := c.docs[ids[i]]["createdAt"].(time.Time)
		tj, _ := c.docs[ids[j]]["createdAt"].(time.Time)
		return ti.After(tj)
	})
	return ids
}

type fakeExperienceRepo struct{ col *fakeCollection }

func newFakeExperienceRepo() *fakeExperienceRepo {
	return &fakeExperienceRepo{col: newFakeCollection()}
}

func (r *fakeExperienceRepo) List(ctx context.Context) ([]*models.Experience, error) {
	out := []*models.Experience{}
	for _, id := range r.col.ids() {
		out = append(out, models.ExperienceFromDoc(id, r.col.get(id)))
	}
	return out, nil
}

func (r *fakeExperienceRepo) GetByID(ctx context.Context, id string) (*models.Experience, error) {
	doc := r.col.get(id)
	if doc == nil {
		return nil, nil
	}
	return models.ExperienceFromDoc(id, doc), nil
}

func (r *fakeExperienceRepo) Create(ctx context.Context, exp *models.Experience) (string, error) {
	return r.col.create(map[string]interface{}{
		"role":        exp.Role,
		"company":     exp.Company,
		"startDate":   exp.StartDate,
		"endDate":     exp.EndDate,
		"description": exp.Description,
		"techStack":   exp.TechStack,
	}), nil
}

func (r *fakeExperienceRepo) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	r.col.merge(id, fields)
	return nil
}

func (r *fakeExperienceRepo) Delete(ctx context.Context, id string) error {
	r.col.delete(id)
	return nil
}

type fakeProjectRepo struct{ col *fakeCollection }

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{col: newFakeCollection()}
}

func (r *fakeProjectRepo) List(ctx context.Context) ([]*models.Project, error) {
	out := []*models.Project{}
	for _, id := range r.col.ids() {
		out = append(out, models.ProjectFromDoc(id, r.col.get(id)))
	}
	return out, nil
}

func (r *fakeProjectRepo) GetByID(ctx context.Context, id string) (*models.Project, error) {
	doc := r.col.get(id)
	if doc == nil {
		return nil, nil
	}
	return models.ProjectFromDoc(id, doc), nil
}

func (r *fakeProjectRepo) Create(ctx context.Context, p *models.Project) (string, error) {
	return r.col.create(map[string]interface{}{
		"title":       p.Title,
		"description": p.Description,
		"impact":      p.Impact,
		"techStack":   p.TechStack,
		"githubUrl":   p.GithubURL,
		"liveUrl":     p.LiveURL,
		"imageUrl":    p.ImageURL,
		"featured":    p.Featured,
	}), nil
}

func (r *fakeProjectRepo) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	r.col.merge(id, fields)
	return nil
}

func (r *fakeProjectRepo) Delete(ctx context.Context, id string) error {
	r.col.delete(id)
	return nil
}

type fakeSkillRepo struct{ col *fakeCollection }

func newFakeSkillRepo() *fakeSkillRepo {
	return &fakeSkillRepo{col: newFakeCollection()}
}

func (r *fakeSkillRepo) List(ctx context.Context) ([]*models.Skill, error) {
	out := []*models.Skill{}
	for _, id := range r.col.ids() {
		out = append(out, models.SkillFromDoc(id, r.col.get(id)))
	}
	return out, nil
}

func (r *fakeSkillRepo) GetByID(ctx context.Context, id string) (*models.Skill, error) {
	doc := r.col.get(id)
	if doc == nil {
		return nil, nil
	}
	return models.SkillFromDoc(id, doc), nil
}

func (r *fakeSkillRepo) Create(ctx context.Context, s *models.Skill) (string, error) {
	return r.col.create(map[string]interface{}{
		"name":     s.Name,
		"category": s.Category,
	}), nil
}

func (r *fakeSkillRepo) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	r.col.merge(id, fields)
	return nil
}

func (r *fakeSkillRepo) Delete(ctx context.Context, id string) error {
	r.col.delete(id)
	return nil
}

type fakeCertificationRepo struct{ col *fakeCollection }

func newFakeCertificationRepo() *fakeCertificationRepo {
	return &fakeCertificationRepo{col: newFakeCollection()}
}

func (r *fakeCertificationRepo) List(ctx context.Context) ([]*models.Certification, error) {
	out := []*models.Certification{}
	for _, id := range r.col.ids() {
		out = append(out, models.CertificationFromDoc(id, r.col.get(id)))
	}
	return out, nil
}

func (r *fakeCertificationRepo) GetByID(ctx context.Context, id string) (*models.Certification, error) {
	doc := r.col.get(id)
	if doc == nil {
		return nil, nil
	}
	return models.CertificationFromDoc(id, doc), nil
}

func (r *fakeCertificationRepo) Create(ctx context.Context, c *models.Certification) (string, error) {
	return r.col.create(map[string]interface{}{
		"title":       c.Title,
		"issuer":      c.Issuer,
		"date":        c.Date,
		"description": c.Description,
	}), nil
}

func (r *fakeCertificationRepo) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	r.col.merge(id, fields)
	return nil
}

func (r *fakeCertificationRepo) Delete(ctx context.Context, id string) error {
	r.col.delete(id)
	return nil
}

type fakeMessageRepo struct{ col *fakeCollection }

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{col: newFakeCollection()}
}

func (r *fakeMessageRepo) List(ctx context.Context) ([]*models.Message, error) {
	out := []*models.Message{}
	for _, id := range r.col.ids() {
		out = append(out, models.MessageFromDoc(id, r.col.get(id)))
	}
	return out, nil
}

func (r *fakeMessageRepo) GetByID(ctx context.Context, id string) (*models.Message, error) {
	doc := r.col.get(id)
	if doc == nil {
		return nil, nil
	}
	return models.MessageFromDoc(id, doc), nil
}

func (r *fakeMessageRepo) Create(ctx context.Context, m *models.Message) (string, error) {
	return r.col.create(map[string]interface{}{
		"name":    m.Name,
		"email":   m.Email,
		"message": m.Message,
	}), nil
}

func (r *fakeMessageRepo) Delete(ctx context.Context, id string) error {
	r.col.delete(id)
	return nil
}

type fakeSettingsRepo struct {
	mu  sync.Mutex
	doc map[string]interface{}
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{}
}

func (r *fakeSettingsRepo) Get(ctx context.Context) (*models.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.doc == nil {
		return nil, nil
	}
	return models.SettingsFromDoc(r.doc), nil
}

func (r *fakeSettingsRepo) Set(ctx context.Context, s *models.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.doc = map[string]interface{}{
		"heroTitle":       s.HeroTitle,
		"heroSubtitle":    s.HeroSubtitle,
		"heroSummary":     s.HeroSummary,
		"aboutText":       s.AboutText,
		"cvUrl":           s.CVURL,
		"contactEmail":    s.ContactEmail,
		"contactLinkedIn": s.ContactLinkedIn,
		"contactGitHub":   s.ContactGitHub,
		"contactWallet":   s.ContactWallet,
	}
	return nil
}

func (r *fakeSettingsRepo) Merge(ctx context.Context, fields map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.doc == nil {
		r.doc = map[string]interface{}{}
	}
	for k, v := range fields {
		r.doc[k] = v
	}
	return nil
}

// fakeStore records uploads instead of talking to a bucket.
type fakeStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: map[string][]byte{}}
}

func (s *fakeStore) Upload(ctx context.Context, path string, data []byte, contentType string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[path] = data
	return "https://storage.test/" + path, nil
}

func (s *fakeStore) Delete(ctx context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, path)
	return nil
}
