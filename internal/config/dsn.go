package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

// DSNValue assembles the connection string for the configured driver. An
// explicit DSN always wins; otherwise one is built from the parts.
func (c DatabaseConfig) DSNValue() string {
	if v := strings.TrimSpace(c.DSN); v != "" {
		return v
	}

	switch c.Driver {
	case "postgres":
		return c.postgresDSN()
	case "mysql":
		return c.mysqlDSN()
	default:
		return c.Path
	}
}

func (c DatabaseConfig) mysqlDSN() string {
	host := c.Host
	if host == "" {
		host = "localhost"
	}
	port := c.Port
	if port == 0 {
		port = defaultDBPortMySQL
	}

	auth := c.User
	if c.Password != "" {
		auth += ":" + c.Password
	}
	if auth != "" {
		auth += "@"
	}
	return fmt.Sprintf("%stcp(%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
		auth, net.JoinHostPort(host, strconv.Itoa(port)), c.Name)
}

func (c DatabaseConfig) postgresDSN() string {
	host := c.Host
	if host == "" {
		host = "localhost"
	}
	port := c.Port
	if port == 0 {
		port = defaultDBPortPostgres
	}

	parts := []string{
		"host=" + host,
		"port=" + strconv.Itoa(port),
		"sslmode=disable",
	}
	if c.User != "" {
		parts = append(parts, "user="+c.User)
	}
	if c.Password != "" {
		parts = append(parts, "password="+c.Password)
	}
	if c.Name != "" {
		parts = append(parts, "dbname="+c.Name)
	}
	return strings.Join(parts, " ")
}
