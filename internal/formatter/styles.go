package formatter

// commonStyles is the shared style block reused verbatim by every generated HTML
// page, including the index. It is static text, never recomputed per render.
const commonStyles = `
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
            max-width: 1200px;
            margin: 0 auto;
            padding: 20px;
            background-color: #f5f5f5;
        }
        .container {
            background-color: white;
            border-radius: 8px;
            padding: 30px;
            box-shadow: 0 2px 4px rgba(0,0,0,0.1);
        }
        h1 {
            color: #1db954;
            margin-bottom: 20px;
        }
        a {
            color: #1db954;
            text-decoration: none;
        }
        a:hover {
            text-decoration: underline;
        }
        .back-to-top {
            position: fixed;
            bottom: 20px;
            right: 20px;
            background-color: #1db954;
            color: white;
            padding: 12px 20px;
            border-radius: 25px;
            text-decoration: none;
            box-shadow: 0 2px 8px rgba(0,0,0,0.2);
            transition: background-color 0.3s;
        }
        .back-to-top:hover {
            background-color: #1ed760;
            text-decoration: none;
        }
        .nav-link {
            display: inline-block;
            margin-bottom: 20px;
            padding: 8px 16px;
            background-color: #f0f0f0;
            border-radius: 4px;
        }
    `

// playlistStyles holds the page-specific rules for per-playlist documents:
// metadata panel, track table, and row number column.
const playlistStyles = `        .metadata {
            background-color: #f9f9f9;
            padding: 15px;
            border-radius: 5px;
            margin-bottom: 30px;
        }
        .metadata p {
            margin: 5px 0;
        }
        table {
            width: 100%;
            border-collapse: collapse;
        }
        th {
            background-color: #1db954;
            color: white;
            padding: 12px;
            text-align: left;
        }
        td {
            padding: 12px;
            border-bottom: 1px solid #ddd;
        }
        tr:hover {
            background-color: #f5f5f5;
        }
        .track-number {
            color: #999;
            text-align: center;
            width: 50px;
        }
`

// indexStyles holds the page-specific rules for the index document: stat cards
// and the responsive playlist card grid.
const indexStyles = `        .stats {
            display: flex;
            gap: 30px;
            margin-bottom: 30px;
        }
        .stat-card {
            background-color: #f9f9f9;
            padding: 20px;
            border-radius: 8px;
            flex: 1;
        }
        .stat-card h3 {
            margin: 0 0 10px 0;
            color: #666;
            font-size: 14px;
            text-transform: uppercase;
        }
        .stat-card p {
            margin: 0;
            font-size: 32px;
            font-weight: bold;
            color: #1db954;
        }
        .playlist-grid {
            display: grid;
            grid-template-columns: repeat(auto-fill, minmax(300px, 1fr));
            gap: 20px;
        }
        .playlist-card {
            background-color: #f9f9f9;
            padding: 20px;
            border-radius: 8px;
            transition: transform 0.2s, box-shadow 0.2s;
        }
        .playlist-card:hover {
            transform: translateY(-2px);
            box-shadow: 0 4px 12px rgba(0,0,0,0.15);
        }
        .playlist-card h3 {
            margin: 0 0 10px 0;
            color: #333;
        }
        .playlist-card h3 a {
            color: #333;
        }
        .playlist-meta {
            color: #666;
            font-size: 14px;
        }
`
