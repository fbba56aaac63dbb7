package db

import _ "embed"

// Schema — DDL для postgres-бэкенда. Все операции идемпотентны.
//
//go:embed schema.sql
var Schema string
