package easyproj

import (
	"archive/zip"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/nerrad567/easy2ha/internal/infrastructure/config"
	"github.com/nerrad567/easy2ha/internal/infrastructure/logging"
)

const testChannelsXML = `<?xml version="1.0" encoding="utf-8"?>
<config>
  <config name="1">
    <property key="Name" value="Living room blinds"/>
    <property key="Icon" value="icon-shutter"/>
    <config name="Context">
      <property key="product.serialNumber" value="AB-1234"/>
    </config>
    <config name="Parameters">
      <property key="runtime" value="30"/>
    </config>
    <config name="FunctionalBlocks">
      <config name="-1">
        <config name="datapoints">
          <config name="0">
            <property key="name" value="Up/Down"/>
            <config name="groupAddresses">
              <config name="5122"/>
            </config>
          </config>
          <config name="1">
            <property key="name" value="Step/Stop"/>
            <config name="groupAddresses">
              <config name="5123"/>
            </config>
          </config>
        </config>
      </config>
    </config>
  </config>
  <config name="2">
    <property key="Icon" value="icon-light"/>
    <config name="Context">
      <property key="product.serialNumber" value="CD-5678"/>
    </config>
    <config name="FunctionalBlocks">
      <config name="0">
        <config name="datapoints">
          <config name="0">
            <property key="name" value="On/Off"/>
            <property key="export" value="false"/>
            <config name="groupAddresses">
              <config name="bogus"/>
              <config name="0"/>
              <config name="4097"/>
            </config>
          </config>
          <config name="1">
            <config name="groupAddresses">
              <config name="4098"/>
            </config>
          </config>
        </config>
      </config>
    </config>
  </config>
</config>`

const testProductsXML = `<?xml version="1.0" encoding="utf-8"?>
<config>
  <config name="0">
    <property key="SerialNumber" value="CD-5678"/>
    <property key="product.name" value="Dimming actuator"/>
  </config>
  <config name="1">
    <property key="product.name" value="No serial"/>
  </config>
</config>`

func newTestParser(t *testing.T) *Parser {
	t.Helper()
	log := logging.New(config.LoggingConfig{Level: "error", Format: "text", Output: "stdout"}, "test")
	return NewParser(log)
}

// buildTestArchive packs the given entries into an in-memory ZIP.
func buildTestArchive(t *testing.T, entries map[string]string) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range entries {
		f, err := w.Create(name)
		if err != nil {
			t.Fatalf("Failed to create zip entry %s: %v", name, err)
		}
		if _, err := f.Write([]byte(content)); err != nil {
			t.Fatalf("Failed to write zip entry %s: %v", name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to close zip: %v", err)
	}
	return buf.Bytes()
}

func TestParseBytesBareXML(t *testing.T) {
	parser := newTestParser(t)
	project, err := parser.ParseBytes([]byte(testChannelsXML), "Channels.xml")
	if err != nil {
		t.Fatalf("ParseBytes failed: %v", err)
	}

	if project.SourceFile != "Channels.xml" {
		t.Errorf("SourceFile = %q, want %q", project.SourceFile, "Channels.xml")
	}
	if len(project.Channels) != 2 {
		t.Fatalf("len(Channels) = %d, want 2", len(project.Channels))
	}

	blinds := project.Channels[0]
	if blinds.Name != "Living room blinds" {
		t.Errorf("Name = %q, want %q", blinds.Name, "Living room blinds")
	}
	if blinds.Icon != "icon-shutter" {
		t.Errorf("Icon = %q, want %q", blinds.Icon, "icon-shutter")
	}
	if blinds.Serial != "AB-1234" {
		t.Errorf("Serial = %q, want %q", blinds.Serial, "AB-1234")
	}
	if !blinds.Exportable() {
		t.Error("Exportable() = false, want true")
	}
	if len(blinds.Datapoints) != 2 {
		t.Fatalf("len(Datapoints) = %d, want 2", len(blinds.Datapoints))
	}
	if blinds.Datapoints[0].Name != "Up/Down" {
		t.Errorf("Datapoints[0].Name = %q, want %q", blinds.Datapoints[0].Name, "Up/Down")
	}
	if got := blinds.Datapoints[0].Addresses; len(got) != 1 || got[0] != 5122 {
		t.Errorf("Datapoints[0].Addresses = %v, want [5122]", got)
	}
	if got := blinds.Datapoints[1].Addresses; len(got) != 1 || got[0] != 5123 {
		t.Errorf("Datapoints[1].Addresses = %v, want [5123]", got)
	}
}

func TestParseBytesDatapointFlags(t *testing.T) {
	parser := newTestParser(t)
	project, err := parser.ParseBytes([]byte(testChannelsXML), "Channels.xml")
	if err != nil {
		t.Fatalf("ParseBytes failed: %v", err)
	}

	light := project.Channels[1]
	if light.Name != "" {
		t.Errorf("Name = %q, want empty (no products document)", light.Name)
	}
	if len(light.Datapoints) != 1 {
		t.Fatalf("len(Datapoints) = %d, want 1 (unnamed datapoint skipped)", len(light.Datapoints))
	}

	onOff := light.Datapoints[0]
	if onOff.HasFlag(FlagExport) {
		t.Error("HasFlag(export) = true, want false for export=false datapoint")
	}
	// "bogus" is not a valid flat address and "0" marks an unconnected
	// datapoint; both are skipped, not fatal.
	if len(onOff.Addresses) != 1 || onOff.Addresses[0] != 4097 {
		t.Errorf("Addresses = %v, want [4097]", onOff.Addresses)
	}
}

func TestParseBytesArchive(t *testing.T) {
	parser := newTestParser(t)
	archive := buildTestArchive(t, map[string]string{
		"configuration/Channels.xml": testChannelsXML,
		"configuration/Products.xml": testProductsXML,
	})

	project, err := parser.ParseBytes(archive, "/exports/house.txa")
	if err != nil {
		t.Fatalf("ParseBytes failed: %v", err)
	}

	if project.SourceFile != "house.txa" {
		t.Errorf("SourceFile = %q, want %q", project.SourceFile, "house.txa")
	}
	if len(project.Products) != 1 {
		t.Fatalf("len(Products) = %d, want 1 (product without serial skipped)", len(project.Products))
	}

	// The unnamed light channel takes its name from the product list.
	light := project.Channels[1]
	if light.Name != "Dimming actuator" {
		t.Errorf("Name = %q, want %q", light.Name, "Dimming actuator")
	}
}

func TestParseBytesMissingChannels(t *testing.T) {
	parser := newTestParser(t)
	archive := buildTestArchive(t, map[string]string{
		"configuration/Products.xml": testProductsXML,
	})

	_, err := parser.ParseBytes(archive, "broken.txa")
	if !errors.Is(err, ErrMissingChannels) {
		t.Errorf("ParseBytes error = %v, want ErrMissingChannels", err)
	}
}

func TestParseBytesInvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		expected error
	}{
		{"not xml or zip", "hello world", ErrInvalidDocument},
		{"malformed xml", "<config><config></config>", ErrInvalidDocument},
		{"empty document", "<config></config>", ErrNoChannels},
	}

	parser := newTestParser(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.ParseBytes([]byte(tt.data), "input.xml")
			if !errors.Is(err, tt.expected) {
				t.Errorf("ParseBytes error = %v, want %v", err, tt.expected)
			}
		})
	}
}

func TestParseBytesCorruptArchive(t *testing.T) {
	parser := newTestParser(t)

	// PK magic with garbage behind it.
	_, err := parser.ParseBytes([]byte("PK\x03\x04garbage"), "broken.txa")
	if !errors.Is(err, ErrInvalidArchive) {
		t.Errorf("ParseBytes error = %v, want ErrInvalidArchive", err)
	}
}

func TestParseFile(t *testing.T) {
	parser := newTestParser(t)
	archive := buildTestArchive(t, map[string]string{
		"configuration/Channels.xml": testChannelsXML,
		"configuration/Products.xml": testProductsXML,
	})

	dir := t.TempDir()
	path := filepath.Join(dir, "house.txa")
	if err := os.WriteFile(path, archive, 0o644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	project, err := parser.ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	if len(project.Channels) != 2 {
		t.Errorf("len(Channels) = %d, want 2", len(project.Channels))
	}

	if _, err := parser.ParseFile(filepath.Join(dir, "missing.txa")); err == nil {
		t.Error("ParseFile on missing path succeeded, want error")
	}
}
