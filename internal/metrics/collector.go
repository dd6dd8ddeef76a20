package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collector инкапсулирует Prometheus-метрики симуляции.
// Все методы безопасны для nil-получателя, чтобы игра могла работать без метрик.
type Collector struct {
	ticks        prometheus.Counter
	blockVisits  prometheus.Counter
	blockUpdates prometheus.Counter
	blockEdits   *prometheus.CounterVec
	rebuilds     prometheus.Counter
	dirtyChunks  prometheus.Gauge
	entities     *prometheus.GaugeVec
	tps          prometheus.Gauge
	fps          prometheus.Gauge
	saves        *prometheus.CounterVec
}

// NewCollector создаёт метрики и регистрирует их в reg.
func NewCollector(namespace string, reg prometheus.Registerer) *Collector {
	c := &Collector{
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ticks_total",
			Help:      "Общее число тиков симуляции.",
		}),
		blockVisits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "block_tick_visits_total",
			Help:      "Случайных посещений ячеек при тиках блоков.",
		}),
		blockUpdates: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "block_tick_updates_total",
			Help:      "Посещений, попавших в блок с поведением тика.",
		}),
		blockEdits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "block_edits_total",
			Help:      "Правки блоков игроком.",
		}, []string{"action"}),
		rebuilds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chunk_layer_rebuilds_total",
			Help:      "Перестроенных слоёв мешей чанков.",
		}),
		dirtyChunks: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "chunks_dirty",
			Help:      "Чанков, ожидающих перестройки меша.",
		}),
		entities: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "entities",
			Help:      "Количество сущностей по типам.",
		}, []string{"type"}),
		tps: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "ticks_per_second",
			Help:      "Тиков за последнюю секунду.",
		}),
		fps: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "frames_per_second",
			Help:      "Кадров за последнюю секунду.",
		}),
		saves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "world_saves_total",
			Help:      "Попытки сохранения мира по результату.",
		}, []string{"result"}),
	}

	reg.MustRegister(
		c.ticks, c.blockVisits, c.blockUpdates, c.blockEdits, c.rebuilds,
		c.dirtyChunks, c.entities, c.tps, c.fps, c.saves,
	)
	return c
}

// ObserveTick учитывает тик симуляции и результат тика блоков
func (c *Collector) ObserveTick(visits, updates int) {
	if c == nil {
		return
	}
	c.ticks.Inc()
	c.blockVisits.Add(float64(visits))
	c.blockUpdates.Add(float64(updates))
}

// ObserveFrame учитывает перестройки кадра и оставшиеся грязные чанки
func (c *Collector) ObserveFrame(rebuilt, dirty int) {
	if c == nil {
		return
	}
	c.rebuilds.Add(float64(rebuilt))
	c.dirtyChunks.Set(float64(dirty))
}

// BlockEdit учитывает правку блока (break/place)
func (c *Collector) BlockEdit(action string) {
	if c == nil {
		return
	}
	c.blockEdits.WithLabelValues(action).Inc()
}

// SetEntities выставляет количество сущностей типа kind
func (c *Collector) SetEntities(kind string, n int) {
	if c == nil {
		return
	}
	c.entities.WithLabelValues(kind).Set(float64(n))
}

// SetRates выставляет посекундные счётчики
func (c *Collector) SetRates(tps, fps int) {
	if c == nil {
		return
	}
	c.tps.Set(float64(tps))
	c.fps.Set(float64(fps))
}

// WorldSaved учитывает попытку сохранения мира
func (c *Collector) WorldSaved(err error) {
	if c == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	c.saves.WithLabelValues(result).Inc()
}
