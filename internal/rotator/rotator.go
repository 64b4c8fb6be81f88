package rotator

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/matheusvll/casaflor-api/internal/entity"
)

// DefaultInterval é o passo do avanço automático.
const DefaultInterval = 5 * time.Second

// LoadFunc busca a sequência "viva" de depoimentos (mais recentes primeiro).
type LoadFunc func(ctx context.Context) ([]entity.Testimonial, error)

// Rotator exibe um depoimento por vez, girando sozinho a cada intervalo e
// aceitando navegação manual. Ele nasce com um fallback fixo de 3 itens,
// então nunca está vazio por falta de rede: se o fetch vivo falhar ou voltar
// vazio, o fallback segue valendo e o usuário não percebe nada.
type Rotator struct {
	mu       sync.Mutex
	items    []entity.Testimonial
	index    int
	closed   bool
	interval time.Duration
	ticker   *time.Ticker
	done     chan struct{}

	load LoadFunc
}

func New(load LoadFunc) *Rotator {
	return &Rotator{
		items:    Fallback(),
		interval: DefaultInterval,
		load:     load,
	}
}

// Fallback devolve a sequência fixa usada quando o conteúdo remoto não está
// disponível. Sempre 3 itens, sem nenhuma dependência de rede.
func Fallback() []entity.Testimonial {
	return []entity.Testimonial{
		{
			Name:    "Juliana Mendes",
			Role:    "Mãe da aniversariante",
			Content: "A festa dos 15 anos da minha filha foi um sonho. A equipe da Casa Flor cuidou de cada detalhe.",
			Rating:  5,
		},
		{
			Name:    "Ricardo e Paula",
			Role:    "Noivos",
			Content: "Casamos na Casa Flor e nossos convidados falam do espaço até hoje. Recomendamos de olhos fechados.",
			Rating:  5,
		},
		{
			Name:    "Fernanda Lopes",
			Role:    "Organizadora de eventos",
			Content: "Trabalho com vários espaços e a Casa Flor é disparado o mais fácil de lidar. Estrutura impecável.",
			Rating:  5,
		},
	}
}

// Load busca a sequência viva. Resultado não-vazio SUBSTITUI o fallback por
// inteiro (não há merge) e o timer é rearmado para o novo tamanho. Erro ou
// resultado vazio mantém a sequência atual — sem retry, sem erro visível.
// Um Load que termina depois de Stop é descartado.
func (r *Rotator) Load(ctx context.Context) {
	live, err := r.load(ctx)
	if err != nil {
		log.Printf("⚠️ Depoimentos remotos indisponíveis, mantendo fallback: %v", err)
		return
	}
	if len(live) == 0 {
		// Resultado vazio é um desfecho válido, não um erro.
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}

	r.items = live
	if r.index >= len(r.items) {
		r.index = 0
	}
	if r.ticker != nil {
		r.ticker.Reset(r.interval)
	}
}

// Start arma o avanço automático. interval <= 0 usa DefaultInterval.
func (r *Rotator) Start(interval time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed || r.ticker != nil {
		return
	}
	if interval > 0 {
		r.interval = interval
	}

	r.ticker = time.NewTicker(r.interval)
	r.done = make(chan struct{})

	go func(ticker *time.Ticker, done chan struct{}) {
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				r.Next()
			}
		}
	}(r.ticker, r.done)
}

// Stop cancela o timer e a goroutine de avanço. Precisa ser chamado quando o
// componente morre: timer vazando e disparando contra componente destruído é
// exatamente a classe de defeito que este design existe para impedir.
func (r *Rotator) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.closed = true
	if r.ticker != nil {
		r.ticker.Stop()
		close(r.done)
		r.ticker = nil
	}
}

// Next avança ciclicamente. Sequência vazia suspende o avanço (não faz
// nada) até existir conteúdo.
func (r *Rotator) Next() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) == 0 {
		return
	}
	r.index = (r.index + 1) % len(r.items)
}

// Prev volta ciclicamente. A soma de len antes do módulo garante que o
// índice nunca fica negativo, independente da semântica de % para negativos.
func (r *Rotator) Prev() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) == 0 {
		return
	}
	r.index = (r.index - 1 + len(r.items)) % len(r.items)
}

// Jump posiciona direto no índice i. Checar os limites é responsabilidade
// do caller: um jump fora da faixa é bug de quem chamou.
func (r *Rotator) Jump(i int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.index = i
}

// Current devolve o depoimento ativo, seu índice e o tamanho da sequência.
// ok=false significa sequência vazia (nada para renderizar).
func (r *Rotator) Current() (item entity.Testimonial, index, total int, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) == 0 {
		return entity.Testimonial{}, 0, 0, false
	}
	return r.items[r.index], r.index, len(r.items), true
}
