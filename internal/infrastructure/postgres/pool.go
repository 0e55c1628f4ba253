package postgres

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/crm-api/pkg/config"
)

// Límites del pool. El CRM no mantiene estado en proceso; todo pasa por la BD.
const (
	poolMaxConns        = 25
	poolMinConns        = 2
	poolMaxConnLifetime = time.Hour
	poolMaxConnIdleTime = 30 * time.Minute
	poolHealthCheck     = time.Minute
)

// fallbackDNS se consulta cuando el DNS del contenedor solo devuelve AAAA.
const fallbackDNS = "8.8.8.8:53"

var errNoIPv4 = errors.New("sin dirección IPv4")

// NewPool crea el pool de PostgreSQL. applicationName aparece en pg_stat_activity.
// El host se resuelve a IPv4 cuando es posible: en Docker no suele haber IPv6.
func NewPool(ctx context.Context, cfg config.DBConfig, applicationName string) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(preferIPv4(ctx, cfg.ConnectionString()))
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	poolConfig.ConnConfig.DialFunc = dialIPv4
	if applicationName != "" {
		poolConfig.ConnConfig.RuntimeParams["application_name"] = applicationName
	}
	poolConfig.MaxConns = poolMaxConns
	poolConfig.MinConns = poolMinConns
	poolConfig.MaxConnLifetime = poolMaxConnLifetime
	poolConfig.MaxConnIdleTime = poolMaxConnIdleTime
	poolConfig.HealthCheckPeriod = poolHealthCheck

	// NUMERIC <-> decimal.Decimal en cada conexión; los montos nunca pasan por float64.
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return pool, nil
}

// dialIPv4 conecta por tcp4 si el host tiene A; si no, deja el dial normal.
func dialIPv4(ctx context.Context, network, addr string) (net.Conn, error) {
	var d net.Dialer
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, err
	}
	ip, err := lookupIPv4(ctx, host)
	if err != nil {
		return d.DialContext(ctx, network, addr)
	}
	return d.DialContext(ctx, "tcp4", net.JoinHostPort(ip, port))
}

// preferIPv4 reescribe el host de un DSN en formato URL por su IPv4.
// Cualquier fallo deja el DSN intacto.
func preferIPv4(ctx context.Context, dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil || u.Host == "" {
		return dsn
	}
	ip, err := lookupIPv4(ctx, u.Hostname())
	if err != nil {
		return dsn
	}
	port := u.Port()
	if port == "" {
		port = "5432"
	}
	u.Host = net.JoinHostPort(ip, port)
	return u.String()
}

// lookupIPv4 devuelve la primera IPv4 de host. Los literales IPv4 se devuelven tal cual
// y los IPv6 fallan sin consultar DNS.
func lookupIPv4(ctx context.Context, host string) (string, error) {
	if ip := net.ParseIP(host); ip != nil {
		if ip.To4() == nil {
			return "", errNoIPv4
		}
		return host, nil
	}
	resolvers := []*net.Resolver{
		net.DefaultResolver,
		{
			PreferGo: true,
			Dial: func(ctx context.Context, _, _ string) (net.Conn, error) {
				var d net.Dialer
				return d.DialContext(ctx, "udp", fallbackDNS)
			},
		},
	}
	for _, r := range resolvers {
		ips, err := r.LookupIP(ctx, "ip4", host)
		if err != nil {
			continue
		}
		for _, ip := range ips {
			if v4 := ip.To4(); v4 != nil {
				return v4.String(), nil
			}
		}
	}
	return "", fmt.Errorf("%s: %w", host, errNoIPv4)
}
