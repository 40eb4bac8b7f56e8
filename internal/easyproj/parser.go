package easyproj

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/nerrad567/easy2ha/internal/infrastructure/logging"
)

// Parser configuration constants.
const (
	// MaxFileSize is the maximum allowed input size (50MB). Real easy
	// exports are a few hundred kilobytes.
	MaxFileSize = 50 * 1024 * 1024

	// Archive entry names, matched case-insensitively on the base name.
	channelsEntry = "channels.xml"
	productsEntry = "products.xml"
)

// Config element names with special handling during the channel walk.
const (
	configParameters = "Parameters"
	configContext    = "Context"
	configBlocks     = "FunctionalBlocks"
	configDatapoints = "datapoints"
	configAddresses  = "groupAddresses"
)

// xmlConfig mirrors the generic <config> element of the export documents.
// The same shape nests arbitrarily deep; element meaning is carried by the
// name attribute.
type xmlConfig struct {
	Name       string        `xml:"name,attr"`
	Properties []xmlProperty `xml:"property"`
	Children   []xmlConfig   `xml:"config"`
}

// xmlProperty mirrors a <property key="..." value="..."/> element.
type xmlProperty struct {
	Key   string `xml:"key,attr"`
	Value string `xml:"value,attr"`
}

// get returns the value of the first property with the given key.
func (c *xmlConfig) get(key string) (string, bool) {
	for _, p := range c.Properties {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// child returns the first nested config with the given name.
func (c *xmlConfig) child(name string) (*xmlConfig, bool) {
	for i := range c.Children {
		if c.Children[i].Name == name {
			return &c.Children[i], true
		}
	}
	return nil, false
}

// Parser reads easy project exports into Project records.
type Parser struct {
	logger *logging.Logger
}

// NewParser creates a parser. The logger receives per-element diagnostics
// at debug and warning level; parse failures are returned as errors.
func NewParser(logger *logging.Logger) *Parser {
	return &Parser{
		logger: logger.With("component", "easyproj"),
	}
}

// ParseFile reads and parses an easy export from disk.
//
// The input may be a .txa archive or a bare Channels.xml document; the
// format is detected from content. The file handle is released before the
// method returns, regardless of outcome.
//
// Returns:
//   - *Project: Parsed project
//   - error: ErrInvalidArchive, ErrInvalidDocument or a wrapped I/O error
func (p *Parser) ParseFile(path string) (*Project, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading project file: %w", err)
	}
	if info.Size() > MaxFileSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrFileTooLarge, info.Size())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading project file: %w", err)
	}

	return p.ParseBytes(data, path)
}

// ParseBytes parses an easy export from a byte slice.
func (p *Parser) ParseBytes(data []byte, filename string) (*Project, error) {
	if len(data) > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	project := &Project{
		SourceFile: filepath.Base(filename),
	}

	switch {
	case isZipFile(data):
		if err := p.parseArchive(data, project); err != nil {
			return nil, err
		}
	case isXMLFile(data):
		if err := p.parseChannelsXML(data, project); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %s is neither a ZIP archive nor an XML document", ErrInvalidDocument, project.SourceFile)
	}

	p.applyProductNames(project)

	p.logger.Debug("project parsed",
		"source", project.SourceFile,
		"channels", len(project.Channels),
		"products", len(project.Products))

	return project, nil
}

// parseArchive extracts Channels.xml and Products.xml from a .txa archive.
// Products.xml is optional; without it the product name fallback for
// unnamed channels is unavailable.
func (p *Parser) parseArchive(data []byte, project *Project) error {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArchive, err)
	}

	var channelsXML []byte
	var productsXML []byte

	for _, file := range reader.File {
		name := strings.ToLower(filepath.Base(file.Name))

		switch name {
		case channelsEntry:
			content, err := readZipFile(file)
			if err != nil {
				return fmt.Errorf("reading %s: %w", file.Name, err)
			}
			channelsXML = content

		case productsEntry:
			content, err := readZipFile(file)
			if err != nil {
				return fmt.Errorf("reading %s: %w", file.Name, err)
			}
			productsXML = content
		}
	}

	if channelsXML == nil {
		return ErrMissingChannels
	}

	if productsXML != nil {
		if err := p.parseProductsXML(productsXML, project); err != nil {
			return err
		}
	} else {
		p.logger.Warn("archive has no products document, unnamed channels stay unnamed")
	}

	return p.parseChannelsXML(channelsXML, project)
}

// parseChannelsXML parses the channel tree of a Channels.xml document.
func (p *Parser) parseChannelsXML(data []byte, project *Project) error {
	var root xmlConfig
	if err := xml.Unmarshal(data, &root); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	if len(root.Children) == 0 {
		return ErrNoChannels
	}

	for i := range root.Children {
		project.Channels = append(project.Channels, p.parseChannel(&root.Children[i]))
	}

	return nil
}

// parseChannel materialises one channel element including its datapoints.
func (p *Parser) parseChannel(cfg *xmlConfig) Channel {
	channel := Channel{
		Flags: []string{FlagExport},
	}

	if name, ok := cfg.get("Name"); ok {
		channel.Name = name
	}
	if icon, ok := cfg.get("Icon"); ok {
		channel.Icon = icon
	}
	if export, ok := cfg.get("Export"); ok && strings.EqualFold(export, "false") {
		channel.Flags = nil
	}

	for i := range cfg.Children {
		p.walkChannelConfig(&cfg.Children[i], &channel)
	}

	p.logger.Debug("parsed channel",
		"name", channel.Name,
		"icon", channel.Icon,
		"datapoints", len(channel.Datapoints))

	return channel
}

// walkChannelConfig walks one nested config of a channel. FunctionalBlocks
// and numeric block elements are descended into; datapoints, group address
// and context blocks are interpreted; everything else is skipped.
func (p *Parser) walkChannelConfig(cfg *xmlConfig, channel *Channel) {
	switch {
	case cfg.Name == configParameters:
		return

	case cfg.Name == configContext:
		if serial, ok := cfg.get("product.serialNumber"); ok {
			channel.Serial = serial
		}
		return

	case cfg.Name == configDatapoints:
		p.parseDatapoints(cfg, channel)
		return

	case cfg.Name == configBlocks, isBlockID(cfg.Name):
		for i := range cfg.Children {
			p.walkChannelConfig(&cfg.Children[i], channel)
		}

	default:
		p.logger.Warn("skip unhandled config", "name", cfg.Name, "channel", channel.Name)
	}
}

// parseDatapoints materialises the datapoints of one datapoints block.
// Datapoints without a name are skipped; their addresses cannot be mapped.
func (p *Parser) parseDatapoints(cfg *xmlConfig, channel *Channel) {
	for i := range cfg.Children {
		dpCfg := &cfg.Children[i]

		name, ok := dpCfg.get("name")
		if !ok || name == "" {
			p.logger.Debug("skip unnamed datapoint", "channel", channel.Name)
			continue
		}

		dp := Datapoint{
			Name:  name,
			Flags: []string{FlagExport},
		}
		if export, ok := dpCfg.get("export"); ok && strings.EqualFold(export, "false") {
			dp.Flags = nil
		}

		if addresses, ok := dpCfg.child(configAddresses); ok {
			p.parseGroupAddresses(addresses, channel.Name, &dp)
		}

		channel.Datapoints = append(channel.Datapoints, dp)
	}
}

// parseGroupAddresses collects the group addresses of one datapoint.
// Invalid addresses are skipped with a warning; they never abort the run.
func (p *Parser) parseGroupAddresses(cfg *xmlConfig, channelName string, dp *Datapoint) {
	for i := range cfg.Children {
		raw := cfg.Children[i].Name

		addr, err := ParseGroupAddress(raw)
		if err != nil {
			p.logger.Warn("skip invalid group address",
				"address", raw,
				"datapoint", dp.Name,
				"channel", channelName)
			continue
		}

		p.logger.Debug("parsed group address",
			"address", addr,
			"bus", addr.ThreeLevel(),
			"datapoint", dp.Name)

		dp.Addresses = append(dp.Addresses, addr)
	}
}

// parseProductsXML parses Products.xml into the project's product list.
func (p *Parser) parseProductsXML(data []byte, project *Project) error {
	var root xmlConfig
	if err := xml.Unmarshal(data, &root); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	for i := range root.Children {
		cfg := &root.Children[i]

		serial, _ := cfg.get("SerialNumber")
		if serial == "" {
			p.logger.Warn("skip product without serial number", "config", cfg.Name)
			continue
		}

		name, _ := cfg.get("product.name")
		project.Products = append(project.Products, Product{
			Name:   name,
			Serial: serial,
		})
	}

	return nil
}

// applyProductNames fills missing channel names from the product list.
// Only the name is recovered; channels that stay unnamed are excluded
// from conversion by the Exportable contract.
func (p *Parser) applyProductNames(project *Project) {
	for i := range project.Channels {
		channel := &project.Channels[i]
		if channel.Name != "" || channel.Serial == "" {
			continue
		}

		if name := project.ProductName(channel.Serial); name != "" {
			channel.Name = name
			p.logger.Info("named channel from product",
				"name", name,
				"serial", channel.Serial)
		} else {
			p.logger.Debug("no product name for serial", "serial", channel.Serial)
		}
	}
}

// isBlockID reports whether a config name is a numeric functional block id
// such as "0" or "-1".
func isBlockID(name string) bool {
	trimmed := strings.TrimPrefix(name, "-")
	if trimmed == "" {
		return false
	}
	for _, r := range trimmed {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// readZipFile reads one archive entry with a size limit.
func readZipFile(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("opening zip entry: %w", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, MaxFileSize))
	if err != nil {
		return nil, fmt.Errorf("reading zip entry: %w", err)
	}
	return data, nil
}

// isZipFile checks the PK magic bytes.
func isZipFile(data []byte) bool {
	return len(data) >= 4 && data[0] == 0x50 && data[1] == 0x4B
}

// isXMLFile checks for an XML document start after leading whitespace.
func isXMLFile(data []byte) bool {
	trimmed := bytes.TrimLeftFunc(data, unicode.IsSpace)
	return bytes.HasPrefix(trimmed, []byte("<?xml")) || bytes.HasPrefix(trimmed, []byte("<"))
}
