package sqlscript

import (
	"bytes"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"database/sql"
	"fmt"
	"io"
	"net/url"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-sql-driver/mysql"
	"github.com/schemalex/sqlscript/internal/errors"
	"github.com/spf13/afero"
)

// ScriptSource is the interface used for objects that provide us with
// the text of an SQL script to segment.
type ScriptSource interface {
	// WriteScript is responsible for doing whatever necessary to retrieve
	// the script and write it to the given io.Writer
	WriteScript(io.Writer) error
}

type readerSource struct {
	src io.Reader
}

type mysqlSource string

type localFileSource struct {
	fs   afero.Fs
	path string
}

type localGitSource struct {
	dir       string
	file      string
	commitish string
}

// NewScriptSource creates a ScriptSource based on the given URI.
// Currently "-" (for stdin), "local-git://...", "mysql://...", and
// "file://..." are supported. A string that does not match any of
// the above patterns and has no scheme part is treated as a local file
// path, as is.
func NewScriptSource(uri string) (ScriptSource, error) {
	// "-" is a special source, denoting stdin.
	if uri == "-" {
		return NewReaderSource(os.Stdin), nil
	}

	if strings.HasPrefix(uri, "mysql://") {
		// Treat the argument as a DSN for mysql.
		// DSN is everything after "mysql://", so let's be lazy
		// and use everything after the second slash
		return NewMySQLSource(uri[8:]), nil
	}

	// Anything without a scheme is a plain path. It is never URL
	// decoded, so '#', '?' and '%' stay part of the file name.
	if !strings.Contains(uri, "://") {
		return NewLocalFileSource(uri), nil
	}

	u, err := url.Parse(uri)
	if err != nil {
		return nil, errors.Wrap(err, `failed to parse uri`)
	}

	switch strings.ToLower(u.Scheme) {
	case "local-git":
		// local-git:///path/to/dir?file=foo&commitish=bar
		q := u.Query()
		return NewLocalGitSource(u.Path, q.Get("file"), q.Get("commitish")), nil
	case "file", "":
		// Eh, no remote host, please
		if u.Host != "" && u.Host != "localhost" {
			return nil, errors.Errorf(`remote hosts for file:// sources are not supported (%s)`, u.Host)
		}
		return NewLocalFileSource(u.Path), nil
	}

	return nil, errors.Errorf(`invalid source '%s'`, uri)
}

// NewReaderSource creates a ScriptSource whose contents are read from the
// given io.Reader.
func NewReaderSource(src io.Reader) ScriptSource {
	return &readerSource{src: src}
}

// NewMySQLSource creates a ScriptSource whose contents are the CREATE TABLE
// statements of every table in the specified MySQL database.
//
// MySQL sources respect extra parameters "ssl-ca", "ssl-cert", and
// "ssl-secret" (which all should point to local file names) when
// the "tls" parameter is set to some boolean true value. In this
// case, we register the given tls configuration using those values
// automatically.
//
// Please note that the "tls" parameter MUST BE A BOOLEAN. Otherwise
// we expect that you have already registered your tls configuration
// manually, and that you gave us the name of that configuration
func NewMySQLSource(s string) ScriptSource {
	return mysqlSource(s)
}

// NewLocalFileSource creates a ScriptSource whose contents are read from
// the given local file
func NewLocalFileSource(s string) ScriptSource {
	return NewLocalFileSourceFs(afero.NewOsFs(), s)
}

// NewLocalFileSourceFs is like NewLocalFileSource, but reads the file
// from the given filesystem
func NewLocalFileSourceFs(fs afero.Fs, s string) ScriptSource {
	return &localFileSource{
		fs:   fs,
		path: s,
	}
}

// NewLocalGitSource creates a ScriptSource whose contents are derived from
// the given file at the given commit ID in a git repository.
func NewLocalGitSource(gitDir, file, commitish string) ScriptSource {
	return &localGitSource{
		dir:       gitDir,
		file:      file,
		commitish: commitish,
	}
}

func (s *readerSource) WriteScript(dst io.Writer) error {
	b, err := io.ReadAll(s.src)
	if err != nil {
		return newReadError("-", errors.Wrap(err, `failed to read script`))
	}
	return writeText(dst, "-", b)
}

func (s *localFileSource) WriteScript(dst io.Writer) error {
	f, err := s.fs.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return newNotFoundError(s.path, errors.Wrapf(err, `script file %s not found`, s.path))
		}
		return newReadError(s.path, errors.Wrapf(err, `failed to open local file %s`, s.path))
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return newReadError(s.path, errors.Wrapf(err, `failed to read local file %s`, s.path))
	}
	return writeText(dst, s.path, b)
}

// writeText copies a script that was read in full to dst. Scripts must
// be valid UTF-8, and "\r\n" line endings are written as "\n".
func writeText(dst io.Writer, source string, b []byte) error {
	if !utf8.Valid(b) {
		return newReadError(source, errors.Errorf(`script %s is not valid UTF-8`, source))
	}

	b = bytes.ReplaceAll(b, []byte("\r\n"), []byte("\n"))
	if _, err := dst.Write(b); err != nil {
		return newReadError(source, errors.Wrap(err, `failed to write script to dst`))
	}
	return nil
}

// MySQLConfig creates a *mysql.Config struct from the given DSN.
func (s mysqlSource) MySQLConfig() (*mysql.Config, error) {
	cfg, err := mysql.ParseDSN(string(s))
	if err != nil {
		return nil, errors.Wrap(err, `failed to parse DSN`)
	}

	// tls=true&ssl-ca=file=...&ssl-cert=...&ssl-secret=...
	if v, err := strconv.ParseBool(cfg.TLSConfig); err == nil && v {
		sslCa := cfg.Params["ssl-ca"]
		sslCert := cfg.Params["ssl-cert"]
		sslSecret := cfg.Params["ssl-secret"]
		if sslCa == "" || sslCert == "" || sslSecret == "" {
			return nil, errors.New(`to enable tls, you must provide ssl-ca, ssl-cert, and ssl-secret parameters to the DSN`)
		}

		// Every source gets its own registered configuration, so
		// the names must be unique. This is the poor man's UUID.
		b := make([]byte, 16)
		rand.Reader.Read(b)
		b[6] = (b[6] & 0x0F) | 0x40
		b[8] = (b[8] &^ 0x40) | 0x80
		tlsName := fmt.Sprintf("custom-tls-%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:])

		rootCertPool := x509.NewCertPool()
		pem, err := os.ReadFile(sslCa)
		if err != nil {
			return nil, errors.Wrap(err, `failed to read ssl-ca file`)
		}

		if ok := rootCertPool.AppendCertsFromPEM(pem); !ok {
			return nil, errors.New(`failed to append ssl-ca PEM to cert pool`)
		}
		certs, err := tls.LoadX509KeyPair(sslCert, sslSecret)
		if err != nil {
			return nil, errors.Wrap(err, `failed to load X509 key pair`)
		}
		mysql.RegisterTLSConfig(tlsName, &tls.Config{
			RootCAs:      rootCertPool,
			Certificates: []tls.Certificate{certs},
		})
		cfg.TLSConfig = tlsName

		delete(cfg.Params, "ssl-ca")
		delete(cfg.Params, "ssl-cert")
		delete(cfg.Params, "ssl-secret")
	}
	return cfg, nil
}

// Open connects to the database described by the DSN.
func (s mysqlSource) Open() (*sql.DB, error) {
	cfg, err := s.MySQLConfig()
	if err != nil {
		return nil, errors.Wrap(err, `failed to create MySQL config from source spec`)
	}

	return sql.Open("mysql", cfg.FormatDSN())
}

func (s mysqlSource) WriteScript(dst io.Writer) error {
	if err := s.writeScript(dst); err != nil {
		return newReadError("mysql", err)
	}
	return nil
}

func (s mysqlSource) writeScript(dst io.Writer) error {
	db, err := s.Open()
	if err != nil {
		return errors.Wrap(err, `failed to open connection to database`)
	}
	defer db.Close()

	tableRows, err := db.Query("SHOW TABLES")
	if err != nil {
		return errors.Wrap(err, `failed to execute 'SHOW TABLES'`)
	}
	defer tableRows.Close()

	var table string
	var tableSchema string
	var buf bytes.Buffer
	for tableRows.Next() {
		if err = tableRows.Scan(&table); err != nil {
			return errors.Wrap(err, `failed to scan tables`)
		}

		if err = db.QueryRow("SHOW CREATE TABLE `"+table+"`").Scan(&table, &tableSchema); err != nil {
			return errors.Wrapf(err, `failed to execute 'SHOW CREATE TABLE "%s"'`, table)
		}
		if buf.Len() > 0 {
			buf.WriteString("\n\n")
		}
		buf.WriteString(tableSchema)
		buf.WriteByte(Terminator)
	}
	if err := tableRows.Err(); err != nil {
		return errors.Wrap(err, `failed to iterate tables`)
	}

	if _, err := buf.WriteTo(dst); err != nil {
		return errors.Wrap(err, `failed to write script to dst`)
	}
	return nil
}

func (s *localGitSource) WriteScript(dst io.Writer) error {
	var out bytes.Buffer
	cmd := exec.Command("git", "show", fmt.Sprintf("%s:%s", s.commitish, s.file))
	cmd.Stdout = &out
	cmd.Dir = s.dir

	if err := cmd.Run(); err != nil {
		return newReadError(s.file, errors.Wrapf(err, `failed to run git command: %s`, cmd.Args))
	}

	if _, err := out.WriteTo(dst); err != nil {
		return newReadError(s.file, errors.Wrap(err, `failed to write script to dst`))
	}
	return nil
}
