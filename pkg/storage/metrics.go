package storage

import (
	"io"

	"github.com/shashiranjanraj/mangamart/pkg/metrics"
)

// meteredDisk wraps a driver and records an operation counter for the
// calls the image workflow makes. Everything else passes through.
type meteredDisk struct {
	Disk
	name string
}

func meter(name string, d Disk) Disk {
	return &meteredDisk{Disk: d, name: name}
}

func (m *meteredDisk) observe(op string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	metrics.StorageOps.WithLabelValues(m.name, op, status).Inc()
}

func (m *meteredDisk) Put(path string, content []byte) error {
	err := m.Disk.Put(path, content)
	m.observe("put", err)
	return err
}

func (m *meteredDisk) PutStream(path string, r io.Reader) error {
	err := m.Disk.PutStream(path, r)
	m.observe("put", err)
	return err
}

func (m *meteredDisk) Get(path string) ([]byte, error) {
	data, err := m.Disk.Get(path)
	m.observe("get", err)
	return data, err
}

func (m *meteredDisk) GetStream(path string) (io.ReadCloser, error) {
	rc, err := m.Disk.GetStream(path)
	m.observe("get", err)
	return rc, err
}

func (m *meteredDisk) Delete(path string) error {
	err := m.Disk.Delete(path)
	m.observe("delete", err)
	return err
}
