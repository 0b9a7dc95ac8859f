package adminclient

import (
	"context"
	"sync"
)

// SessionState est l'état observable de la session : inconnu tant que l'état
// d'authentification n'est pas établi, puis déconnecté ou connecté.
type SessionState int

const (
	SessionUnknown SessionState = iota
	SessionSignedOut
	SessionSignedIn
)

// AdminStatus est le statut admin de l'identité courante. Pendant qu'un
// lookup est en cours le statut reste AdminUnknown, jamais AdminDenied :
// c'est ce qui évite d'afficher le refus avant de savoir.
type AdminStatus int

const (
	AdminUnknown AdminStatus = iota
	AdminDenied
	AdminGranted
)

// Outcome est l'un des quatre rendus possibles de la garde.
type Outcome int

const (
	OutcomeChecking Outcome = iota
	OutcomeRedirectLogin
	OutcomeDenied
	OutcomeAllow
)

// ResolveFunc répond à "cette identité a-t-elle un enregistrement admin ?".
type ResolveFunc func(ctx context.Context, identity string) (bool, error)

// Guard est la garde de session du dashboard. À chaque changement d'identité
// elle relance la résolution admin de façon asynchrone ; un compteur de
// génération écarte le résultat de tout lookup dépassé entre-temps, pour que
// le statut commis reflète toujours la dernière identité.
type Guard struct {
	mu       sync.Mutex
	resolve  ResolveFunc
	state    SessionState
	identity string
	admin    AdminStatus
	gen      uint64
	onChange func()
}

func NewGuard(resolve ResolveFunc) *Guard {
	return &Guard{resolve: resolve, state: SessionUnknown, admin: AdminUnknown}
}

// OnChange enregistre un callback notifié à chaque transition d'état.
func (g *Guard) OnChange(fn func()) {
	g.mu.Lock()
	g.onChange = fn
	g.mu.Unlock()
}

func (g *Guard) notify() {
	g.mu.Lock()
	fn := g.onChange
	g.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// SetIdentity signale un changement d'identité : chaîne vide = déconnecté.
// Toute résolution encore en vol pour l'identité précédente est invalidée.
func (g *Guard) SetIdentity(identity string) {
	g.mu.Lock()
	g.gen++
	gen := g.gen
	g.identity = identity

	if identity == "" {
		g.state = SessionSignedOut
		g.admin = AdminDenied
		g.mu.Unlock()
		g.notify()
		return
	}

	g.state = SessionSignedIn
	g.admin = AdminUnknown
	g.mu.Unlock()
	g.notify()

	go g.lookup(gen, identity)
}

func (g *Guard) lookup(gen uint64, identity string) {
	ok, err := g.resolve(context.Background(), identity)

	g.mu.Lock()
	if gen != g.gen {
		// Résultat périmé : une autre identité a pris le relais
		g.mu.Unlock()
		return
	}
	switch {
	case err != nil:
		// Fail closed : une erreur de lookup vaut refus
		g.admin = AdminDenied
	case ok:
		g.admin = AdminGranted
	default:
		g.admin = AdminDenied
	}
	g.mu.Unlock()
	g.notify()
}

// Outcome retourne exactement l'un des quatre rendus de la garde. Le contenu
// protégé n'est servi que si le statut admin est formellement AdminGranted.
func (g *Guard) Outcome() Outcome {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch {
	case g.state == SessionUnknown:
		return OutcomeChecking
	case g.state == SessionSignedOut:
		return OutcomeRedirectLogin
	case g.admin == AdminUnknown:
		return OutcomeChecking
	case g.admin == AdminGranted:
		return OutcomeAllow
	default:
		return OutcomeDenied
	}
}

// ShouldRedirectFromLogin est la vérification inverse, côté page de login :
// un admin déjà connecté est renvoyé vers la vue protégée. Même résolution
// que la garde, pas de seconde implémentation.
func (g *Guard) ShouldRedirectFromLogin() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state == SessionSignedIn && g.admin == AdminGranted
}
