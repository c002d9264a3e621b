// templates.go holds the complete output payload of the generator: the
// directory plan and every template file written into a new project.
//
// The target project is a Node/Express service, so the template bodies are
// JavaScript and the manifest is a package.json. The generator itself never
// executes any of this — it is data, run later in a separately started
// process as someone else's application.
package scaffold

// TemplateFile is a single text blob written verbatim into the generated
// project at RelativePath. Each file is written exactly once and
// independently; order is irrelevant because no file depends on another
// existing first (parent directories are guaranteed by the directory plan).
type TemplateFile struct {
	// RelativePath is the output path, relative to the project root,
	// using forward slashes. It is converted with filepath.FromSlash
	// at write time.
	RelativePath string

	// Content is the full file body.
	Content string
}

// directoryPlan is the ordered set of directories ensured to exist before
// any file is written. Invariant: the parent of every template file below
// is either the project root or listed here. The controllers/models/utils
// entries produce empty-but-present directories that give the generated
// project its conventional layout.
var directoryPlan = []string{
	"public",
	"src",
	"src/config",
	"src/controllers",
	"src/models",
	"src/routes",
	"src/utils",
}

// templateFiles is the fixed, enumerable list of source files written into
// every generated project. The manifest (package.json) is not listed here
// because it is the only name-sensitive output and is built separately in
// manifest.go.
var templateFiles = []TemplateFile{
	{
		RelativePath: "server.js",
		Content:      serverJS,
	},
	{
		RelativePath: "src/config/db.js",
		Content:      dbJS,
	},
	{
		RelativePath: "src/routes/index.js",
		Content:      routesIndexJS,
	},
	{
		RelativePath: "src/routes/userRoutes.js",
		Content:      userRoutesJS,
	},
}

// serverJS is the service entry point. It embeds the available-port
// discovery routine: a strictly sequential upward search from the
// preferred port (PORT env var, default 3000) to the ceiling 65535.
//
// The probe is check-then-use, not a reservation: another process can
// grab the port between the probe's close and the real listener's bind.
// When the whole range is exhausted the service logs an error and never
// starts listening — the process stays alive but non-serving.
const serverJS = `require('dotenv').config();

const express = require('express');
const cors = require('cors');
const net = require('net');

const connectDB = require('./src/config/db');
const routes = require('./src/routes');

const app = express();

connectDB();

app.use(cors());
app.use(express.json());

app.use('/api', routes);

// Probe ports sequentially upward from the preferred port until a bind
// succeeds or the ceiling is passed. Each probe binds a transient server
// and releases it immediately; the port is checked, not reserved.
function findAvailablePort(port, maxPort = 65535) {
  return new Promise((resolve) => {
    const probe = net.createServer();
    probe.once('error', () => {
      if (port < maxPort) {
        resolve(findAvailablePort(port + 1, maxPort));
      } else {
        resolve(null);
      }
    });
    probe.once('listening', () => {
      probe.close(() => resolve(port));
    });
    probe.listen(port);
  });
}

const preferredPort = parseInt(process.env.PORT, 10) || 3000;

findAvailablePort(preferredPort).then((port) => {
  if (port === null) {
    console.error('No available port found between ' + preferredPort + ' and 65535');
    return;
  }
  app.listen(port, () => {
    console.log('Server running on port ' + port);
  });
});
`

// dbJS establishes the MongoDB connection. A failed initial connection is
// fatal: the generated process exits with a non-zero status immediately.
const dbJS = `const mongoose = require('mongoose');

const connectDB = async () => {
  mongoose.connection.on('connected', () => {
    console.log('MongoDB connected');
  });
  mongoose.connection.on('error', (err) => {
    console.error('MongoDB connection error: ' + err);
  });

  try {
    await mongoose.connect(process.env.MONGO_URI || 'mongodb://localhost:27017/myapp');
  } catch (err) {
    console.error('Failed to connect to MongoDB: ' + err);
    process.exit(1);
  }
};

module.exports = connectDB;
`

// routesIndexJS is the top-level router, mounted under /api by server.js.
const routesIndexJS = `const express = require('express');

const userRoutes = require('./userRoutes');

const router = express.Router();

router.use('/users', userRoutes);

module.exports = router;
`

// userRoutesJS defines placeholder list/create endpoints for users.
const userRoutesJS = `const express = require('express');

const router = express.Router();

router.get('/', (req, res) => {
  res.send('List users');
});

router.post('/', (req, res) => {
  res.send('Create user');
});

module.exports = router;
`
