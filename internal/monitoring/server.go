// Package monitoring runs a small ops dashboard on a separate port with
// live system stats pushed over a websocket. It is reachable only from the
// internal network, never through the public reverse proxy.
package monitoring

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
)

type MonitoringServer struct {
	db         *pgxpool.Pool
	port       int
	startedAt  time.Time
	clients    map[*websocket.Conn]bool
	clientsMux sync.Mutex
}

type Stats struct {
	DatabaseStatus    string  `json:"database_status"`
	ActiveConnections int     `json:"active_connections"`
	ResponseTime      int64   `json:"response_time_ms"`
	CPUPercent        float64 `json:"cpu_percent"`
	MemoryPercent     float64 `json:"memory_percent"`
	MemoryUsed        string  `json:"memory_used"`
	MemoryTotal       string  `json:"memory_total"`
	DiskPercent       float64 `json:"disk_percent"`
	DiskUsed          string  `json:"disk_used"`
	DiskTotal         string  `json:"disk_total"`
	PendingBookings   int     `json:"pending_bookings"`
	OpenTickets       int     `json:"open_tickets"`
	Uptime            string  `json:"uptime"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func NewMonitoringServer(db *pgxpool.Pool, port int) *MonitoringServer {
	return &MonitoringServer{
		db:        db,
		port:      port,
		startedAt: time.Now(),
		clients:   make(map[*websocket.Conn]bool),
	}
}

// Start blocks serving the dashboard; run it in its own goroutine
func (ms *MonitoringServer) Start() {
	r := mux.NewRouter()

	r.HandleFunc("/api/stats", ms.getStats).Methods("GET")
	r.HandleFunc("/ws", ms.handleWebSocket)

	go ms.pushLoop()

	addr := fmt.Sprintf(":%d", ms.port)
	log.Printf("[Monitoring] Dashboard running on %s", addr)
	log.Fatal(http.ListenAndServe(addr, r))
}

func (ms *MonitoringServer) getStats(w http.ResponseWriter, r *http.Request) {
	stats := ms.collect()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}

func (ms *MonitoringServer) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[Monitoring] Websocket upgrade failed: %v", err)
		return
	}

	ms.clientsMux.Lock()
	ms.clients[conn] = true
	ms.clientsMux.Unlock()

	// Reader loop only exists to notice the close
	go func() {
		defer ms.dropClient(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (ms *MonitoringServer) dropClient(conn *websocket.Conn) {
	ms.clientsMux.Lock()
	delete(ms.clients, conn)
	ms.clientsMux.Unlock()
	conn.Close()
}

// pushLoop broadcasts fresh stats to every connected client every 5s
func (ms *MonitoringServer) pushLoop() {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		ms.clientsMux.Lock()
		if len(ms.clients) == 0 {
			ms.clientsMux.Unlock()
			continue
		}
		clients := make([]*websocket.Conn, 0, len(ms.clients))
		for c := range ms.clients {
			clients = append(clients, c)
		}
		ms.clientsMux.Unlock()

		stats := ms.collect()
		for _, conn := range clients {
			if err := conn.WriteJSON(stats); err != nil {
				ms.dropClient(conn)
			}
		}
	}
}

func (ms *MonitoringServer) collect() Stats {
	stats := Stats{Uptime: time.Since(ms.startedAt).Round(time.Second).String()}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	start := time.Now()
	if err := ms.db.Ping(ctx); err != nil {
		stats.DatabaseStatus = "unhealthy"
	} else {
		stats.DatabaseStatus = "healthy"
	}
	stats.ResponseTime = time.Since(start).Milliseconds()
	stats.ActiveConnections = int(ms.db.Stat().AcquiredConns())

	if err := ms.db.QueryRow(ctx,
		"SELECT COUNT(*) FROM booking_requests WHERE status = 'pending'",
	).Scan(&stats.PendingBookings); err != nil {
		stats.PendingBookings = -1
	}
	if err := ms.db.QueryRow(ctx,
		"SELECT COUNT(*) FROM service_requests WHERE status IN ('received', 'in_progress')",
	).Scan(&stats.OpenTickets); err != nil {
		stats.OpenTickets = -1
	}

	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		stats.CPUPercent = percents[0]
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		stats.MemoryPercent = vm.UsedPercent
		stats.MemoryUsed = formatBytes(vm.Used)
		stats.MemoryTotal = formatBytes(vm.Total)
	}
	if du, err := disk.Usage("/"); err == nil {
		stats.DiskPercent = du.UsedPercent
		stats.DiskUsed = formatBytes(du.Used)
		stats.DiskTotal = formatBytes(du.Total)
	}

	return stats
}

func formatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(b)/float64(div), "KMGTPE"[exp])
}
