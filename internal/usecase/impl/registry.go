package impl

import (
	"sync"

	"rxconsole/internal/domain/entity"
	domainerrors "rxconsole/internal/domain/errors"
	"rxconsole/internal/domain/repository"
	"rxconsole/internal/usecase"
)

// TableRegistry holds one controller per resource, in registration order.
type TableRegistry struct {
	deps TableDeps

	mu     sync.RWMutex
	order  []string
	tables map[string]usecase.TableController
}

// NewTableRegistry creates an empty registry whose controllers share deps.
func NewTableRegistry(deps TableDeps) *TableRegistry {
	return &TableRegistry{
		deps:   deps,
		tables: make(map[string]usecase.TableController),
	}
}

// Register instantiates the controller of a definition. Registering a name twice replaces the controller.
func Register[T entity.Record](r *TableRegistry, def Definition[T], repo repository.ResourceRepository[T]) *Controller[T] {
	controller := NewController(def, repo, r.deps)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tables[def.Name]; !exists {
		r.order = append(r.order, def.Name)
	}
	r.tables[def.Name] = controller

	return controller
}

// Get returns the controller of a resource.
func (r *TableRegistry) Get(name string) (usecase.TableController, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	controller, ok := r.tables[name]
	if !ok {
		return nil, domainerrors.ErrResourceNotFound.WithDetails(name)
	}

	return controller, nil
}

// List describes every registered resource.
func (r *TableRegistry) List() []usecase.ResourceInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	infos := make([]usecase.ResourceInfo, 0, len(r.order))
	for _, name := range r.order {
		infos = append(infos, r.tables[name].Info())
	}

	return infos
}
