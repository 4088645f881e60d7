package assets

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/philipparndt/goview/pkg/geometry"
	"github.com/philipparndt/goview/pkg/modelinfo"
)

// Change tells the caller which slot a drop or reload replaced
type Change int

const (
	Unchanged Change = iota
	ModelReplaced
	TextureReplaced
)

func (c Change) String() string {
	switch c {
	case ModelReplaced:
		return "model"
	case TextureReplaced:
		return "texture"
	default:
		return "unchanged"
	}
}

// ErrClosed is returned for operations after Close
var ErrClosed = errors.New("asset library closed")

type slot[T any] struct {
	id    uuid.UUID
	path  string
	value T
}

// Library owns the one active model and the optional active texture.
// It is not safe for concurrent use; the main loop is its only caller.
type Library struct {
	backend  Backend
	validate Validator
	logger   *log.Logger

	model   *slot[Model]
	texture *slot[Texture]
	bounds  geometry.BoundingBox
	closed  bool
}

type Option func(*Library)

// WithValidator replaces the default Inspect validator. nil disables validation.
func WithValidator(v Validator) Option {
	return func(l *Library) {
		l.validate = v
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(l *Library) {
		l.logger = logger
	}
}

func NewLibrary(backend Backend, opts ...Option) *Library {
	l := &Library{
		backend:  backend,
		validate: Inspect,
		logger:   log.Default(),
		bounds:   geometry.NewBoundingBox(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Open loads the startup model and texture. A model that fails to load is
// replaced by the backend placeholder and a texture that fails leaves the slot
// empty, so the library is usable even when an error is returned.
func (l *Library) Open(modelPath, texturePath string) error {
	if l.closed {
		return ErrClosed
	}
	var errs []error

	if err := l.loadModel(modelPath); err != nil {
		errs = append(errs, err)
	}
	if texturePath != "" {
		if err := l.loadTexture(texturePath); err != nil {
			errs = append(errs, err)
		}
	}
	l.attach()

	return errors.Join(errs...)
}

// HandleDrop applies a drop event. Only drops of exactly one file with a
// known extension have an effect; anything else is ignored without error.
func (l *Library) HandleDrop(paths []string) (Change, error) {
	if len(paths) != 1 {
		l.logger.Debug("Ignoring drop", "files", len(paths))
		return Unchanged, nil
	}
	return l.Replace(paths[0])
}

// Replace swaps the model or texture for path, chosen by extension.
// A file that fails validation leaves all state unchanged.
func (l *Library) Replace(path string) (Change, error) {
	if l.closed {
		return Unchanged, ErrClosed
	}

	kind := Classify(path)
	if kind == modelinfo.KindUnknown {
		l.logger.Debug("Ignoring file with unknown extension", "path", path)
		return Unchanged, nil
	}

	if l.validate != nil {
		if err := l.validate(path); err != nil {
			return Unchanged, fmt.Errorf("rejected %s: %w", path, err)
		}
	}

	switch kind {
	case modelinfo.KindModel:
		l.releaseModel()
		err := l.loadModel(path)
		l.attach()
		return ModelReplaced, err
	default:
		l.releaseTexture()
		err := l.loadTexture(path)
		if err != nil && l.model != nil {
			// the model still points at the released texture
			l.backend.ClearDiffuse(l.model.value)
		}
		l.attach()
		return TextureReplaced, err
	}
}

// Reload re-runs Replace when path is the active model or texture
func (l *Library) Reload(path string) (Change, error) {
	if l.closed {
		return Unchanged, ErrClosed
	}
	switch {
	case l.model != nil && samePath(l.model.path, path):
		return l.Replace(l.model.path)
	case l.texture != nil && samePath(l.texture.path, path):
		return l.Replace(l.texture.path)
	}
	return Unchanged, nil
}

// Close releases the texture, then the model. Further calls are no-ops.
func (l *Library) Close() {
	if l.closed {
		return
	}
	l.releaseTexture()
	l.releaseModel()
	l.closed = true
}

func (l *Library) loadModel(path string) error {
	model, err := l.backend.LoadModel(path)
	id := uuid.New()
	if err != nil || model == nil {
		if err == nil {
			err = errors.New("backend returned no model")
		}
		l.logger.Warn("Failed to load model, using placeholder", "path", path, "err", err)
		l.model = &slot[Model]{id: id, path: path, value: l.backend.Placeholder()}
		l.bounds = l.model.value.Bounds()
		return fmt.Errorf("failed to load model %s: %w", path, err)
	}

	l.model = &slot[Model]{id: id, path: path, value: model}
	l.bounds = model.Bounds()
	l.logger.Info("Loaded model", "path", path, "id", id, "meshes", model.MeshCount())
	return nil
}

func (l *Library) loadTexture(path string) error {
	texture, err := l.backend.LoadTexture(path)
	if err != nil || texture == nil {
		if err == nil {
			err = errors.New("backend returned no texture")
		}
		l.logger.Warn("Failed to load texture", "path", path, "err", err)
		return fmt.Errorf("failed to load texture %s: %w", path, err)
	}

	id := uuid.New()
	l.texture = &slot[Texture]{id: id, path: path, value: texture}
	w, h := texture.Size()
	l.logger.Info("Loaded texture", "path", path, "id", id, "size", fmt.Sprintf("%dx%d", w, h))
	return nil
}

func (l *Library) attach() {
	if l.model == nil || l.texture == nil {
		return
	}
	l.backend.SetDiffuse(l.model.value, l.texture.value)
}

func (l *Library) releaseModel() {
	if l.model == nil {
		return
	}
	l.backend.UnloadModel(l.model.value)
	l.logger.Debug("Released model", "path", l.model.path, "id", l.model.id)
	l.model = nil
	l.bounds = geometry.NewBoundingBox()
}

func (l *Library) releaseTexture() {
	if l.texture == nil {
		return
	}
	l.backend.UnloadTexture(l.texture.value)
	l.logger.Debug("Released texture", "path", l.texture.path, "id", l.texture.id)
	l.texture = nil
}

// Model returns the active model, nil before Open or after Close
func (l *Library) Model() Model {
	if l.model == nil {
		return nil
	}
	return l.model.value
}

// Texture returns the active texture or nil
func (l *Library) Texture() Texture {
	if l.texture == nil {
		return nil
	}
	return l.texture.value
}

func (l *Library) ModelPath() string {
	if l.model == nil {
		return ""
	}
	return l.model.path
}

func (l *Library) TexturePath() string {
	if l.texture == nil {
		return ""
	}
	return l.texture.path
}

// ModelID identifies the current model load
func (l *Library) ModelID() uuid.UUID {
	if l.model == nil {
		return uuid.Nil
	}
	return l.model.id
}

// Bounds of the active model, empty when there is none
func (l *Library) Bounds() geometry.BoundingBox {
	return l.bounds
}

// WatchPaths lists the files backing the active slots
func (l *Library) WatchPaths() []string {
	var paths []string
	if l.model != nil {
		paths = append(paths, l.model.path)
	}
	if l.texture != nil {
		paths = append(paths, l.texture.path)
	}
	return paths
}

func samePath(a, b string) bool {
	if a == b {
		return true
	}
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	return errA == nil && errB == nil && absA == absB
}
