package mockshop

import (
	"net/http"
	"strings"
	"sync"

	"github.com/nirvanashop/shop-contract-tests/framework"
	"github.com/nirvanashop/shop-contract-tests/shopapi"

	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"

	"github.com/gorilla/mux"
)

const (
	UnauthorizedMessage    = "Unauthorized: not signed in"
	RouteNotFoundMessage   = "Route not found"
	ProductNotFoundMessage = "Product not found"
)

type Service struct {
	prefix      string
	products    []ldvalue.Value
	overrides   map[string]http.Handler
	handler     http.Handler
	debugLogger framework.Logger
	lock        sync.RWMutex
}

// NewService creates a mock backend. All routes are under prefix, which may be empty; the
// hosted backend uses "/api".
func NewService(
	products []ldvalue.Value,
	prefix string,
	debugLogger framework.Logger,
) *Service {
	if debugLogger == nil {
		debugLogger = framework.NullLogger()
	}
	s := &Service{
		prefix:      strings.TrimSuffix(prefix, "/"),
		products:    append([]ldvalue.Value(nil), products...),
		overrides:   make(map[string]http.Handler),
		debugLogger: framework.LoggerWithPrefix(debugLogger, "[mockshop] "),
	}

	router := mux.NewRouter()
	routes := router
	if s.prefix != "" {
		routes = router.PathPrefix(s.prefix).Subrouter()
	}
	unauthorized := http.HandlerFunc(s.serveUnauthorized)

	routes.HandleFunc(shopapi.PathProducts, s.serveProducts).Methods("GET")
	routes.Handle(shopapi.PathProducts, unauthorized).Methods("POST")
	routes.HandleFunc(shopapi.PathProducts+"/{id}", s.serveProduct).Methods("GET")
	routes.Handle(shopapi.PathCart, unauthorized).Methods("GET", "POST")
	routes.Handle(shopapi.PathCart+"/{id}", unauthorized).Methods("PATCH", "DELETE")
	routes.Handle(shopapi.PathOrders, unauthorized).Methods("GET", "POST")
	routes.Handle(shopapi.PathAdminOrders, unauthorized).Methods("GET")
	routes.Handle(shopapi.PathAdminCustomers, unauthorized).Methods("GET")

	notFound := http.HandlerFunc(s.serveNotFound)
	router.NotFoundHandler = notFound
	router.MethodNotAllowedHandler = notFound
	s.handler = router

	return s
}

// Override replaces the handler for one method and path. The path does not include the
// service's prefix; it must match the request path exactly, so "/products" does not override
// "/products/{id}".
func (s *Service) Override(method, path string, handler http.Handler) {
	s.lock.Lock()
	s.overrides[method+" "+path] = handler
	s.lock.Unlock()
}

// SetProducts replaces the product list.
func (s *Service) SetProducts(products []ldvalue.Value) {
	s.lock.Lock()
	s.products = append([]ldvalue.Value(nil), products...)
	s.lock.Unlock()
}

func (s *Service) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.debugLogger.Printf("%s %s", r.Method, r.URL.Path)
	if path, ok := strings.CutPrefix(r.URL.Path, s.prefix); ok {
		s.lock.RLock()
		override := s.overrides[r.Method+" "+path]
		s.lock.RUnlock()
		if override != nil {
			override.ServeHTTP(w, r)
			return
		}
	}
	s.handler.ServeHTTP(w, r)
}

func (s *Service) serveProducts(w http.ResponseWriter, r *http.Request) {
	s.lock.RLock()
	products := ldvalue.ArrayOf(s.products...)
	s.lock.RUnlock()
	writeJSON(w, http.StatusOK, ldvalue.ObjectBuild().
		Set("success", ldvalue.Bool(true)).
		Set("products", products).
		Build())
}

func (s *Service) serveProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	s.lock.RLock()
	defer s.lock.RUnlock()
	for _, p := range s.products {
		if shopapi.NewProduct(p).ID().OrElse("") == id {
			writeJSON(w, http.StatusOK, ldvalue.ObjectBuild().
				Set("success", ldvalue.Bool(true)).
				Set("product", p).
				Build())
			return
		}
	}
	writeError(w, http.StatusNotFound, ProductNotFoundMessage)
}

func (s *Service) serveUnauthorized(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusUnauthorized, UnauthorizedMessage)
}

func (s *Service) serveNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, RouteNotFoundMessage)
}

// ErrorBody is the body the backend sends with an error status.
func ErrorBody(message string) ldvalue.Value {
	return ldvalue.ObjectBuild().
		Set("success", ldvalue.Bool(false)).
		Set("error", ldvalue.String(message)).
		Build()
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorBody(message))
}

func writeJSON(w http.ResponseWriter, status int, body ldvalue.Value) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body.JSONString()))
}
