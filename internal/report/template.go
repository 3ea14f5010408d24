package report

// pageHTML is the full report document. Layout and styling carried as
// a fixed design; everything dynamic comes in via Page.
const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>NC Lottery Scratch-Off Analyzer</title>
    <link rel="preconnect" href="https://fonts.googleapis.com">
    <link rel="preconnect" href="https://fonts.gstatic.com" crossorigin>
    <link href="https://fonts.googleapis.com/css2?family=Outfit:wght@300;400;500;600;700&family=JetBrains+Mono:wght@400;500&display=swap" rel="stylesheet">
    <style>
        :root {
            --bg-primary: #0a0a0f;
            --bg-secondary: #12121a;
            --bg-card: #1a1a24;
            --bg-hover: #22222e;
            --text-primary: #f0f0f5;
            --text-secondary: #8888a0;
            --text-muted: #555566;
            --accent-green: #00d67d;
            --accent-green-dim: #00d67d22;
            --accent-red: #ff4757;
            --accent-red-dim: #ff475722;
            --accent-gold: #ffd700;
            --accent-blue: #4dabf7;
            --border-color: #2a2a3a;
            --gradient-1: linear-gradient(135deg, #00d67d 0%, #00b368 100%);
            --gradient-2: linear-gradient(135deg, #4dabf7 0%, #3b8ed6 100%);
        }

        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        body {
            font-family: 'Outfit', -apple-system, BlinkMacSystemFont, sans-serif;
            background: var(--bg-primary);
            color: var(--text-primary);
            min-height: 100vh;
            line-height: 1.6;
        }

        .container {
            max-width: 1200px;
            margin: 0 auto;
            padding: 2rem;
        }

        header {
            text-align: center;
            padding: 3rem 0;
            border-bottom: 1px solid var(--border-color);
            margin-bottom: 2rem;
        }

        .logo {
            font-size: 2.5rem;
            font-weight: 700;
            background: var(--gradient-1);
            -webkit-background-clip: text;
            -webkit-text-fill-color: transparent;
            background-clip: text;
            margin-bottom: 0.5rem;
            letter-spacing: -0.02em;
        }

        .tagline {
            color: var(--text-secondary);
            font-size: 1.1rem;
            font-weight: 300;
        }

        .update-time {
            display: inline-flex;
            align-items: center;
            gap: 0.5rem;
            margin-top: 1.5rem;
            padding: 0.5rem 1rem;
            background: var(--bg-secondary);
            border-radius: 2rem;
            font-size: 0.85rem;
            color: var(--text-secondary);
            font-family: 'JetBrains Mono', monospace;
        }

        .update-time::before {
            content: '';
            width: 8px;
            height: 8px;
            background: var(--accent-green);
            border-radius: 50%;
            animation: pulse 2s infinite;
        }

        @keyframes pulse {
            0%, 100% { opacity: 1; }
            50% { opacity: 0.5; }
        }

        .info-box {
            background: var(--bg-secondary);
            border: 1px solid var(--border-color);
            border-radius: 1rem;
            padding: 1.5rem;
            margin-bottom: 2rem;
        }

        .info-box h3 {
            color: var(--accent-blue);
            font-size: 1rem;
            font-weight: 600;
            margin-bottom: 0.75rem;
            display: flex;
            align-items: center;
            gap: 0.5rem;
        }

        .info-box p {
            color: var(--text-secondary);
            font-size: 0.9rem;
            margin-bottom: 0.5rem;
        }

        .info-box .highlight {
            color: var(--text-primary);
            font-weight: 500;
        }

        .info-box .positive { color: var(--accent-green); }
        .info-box .negative { color: var(--accent-red); }

        .section-header {
            display: flex;
            align-items: center;
            justify-content: space-between;
            margin-bottom: 1rem;
            padding-bottom: 0.75rem;
            border-bottom: 1px solid var(--border-color);
        }

        .section-title {
            font-size: 1.25rem;
            font-weight: 600;
            display: flex;
            align-items: center;
            gap: 0.75rem;
        }

        .section-title .icon {
            font-size: 1.5rem;
        }

        .section-count {
            background: var(--bg-card);
            padding: 0.25rem 0.75rem;
            border-radius: 1rem;
            font-size: 0.8rem;
            color: var(--text-secondary);
            font-family: 'JetBrains Mono', monospace;
        }

        .table-container {
            background: var(--bg-secondary);
            border: 1px solid var(--border-color);
            border-radius: 1rem;
            overflow: hidden;
            margin-bottom: 2.5rem;
        }

        table {
            width: 100%;
            border-collapse: collapse;
        }

        th {
            background: var(--bg-card);
            padding: 1rem;
            text-align: left;
            font-weight: 500;
            font-size: 0.8rem;
            text-transform: uppercase;
            letter-spacing: 0.05em;
            color: var(--text-secondary);
            border-bottom: 1px solid var(--border-color);
        }

        td {
            padding: 1rem;
            border-bottom: 1px solid var(--border-color);
            font-size: 0.95rem;
        }

        tr:last-child td {
            border-bottom: none;
        }

        .game-row {
            cursor: pointer;
            transition: background 0.2s ease;
        }

        .game-row:hover {
            background: var(--bg-hover);
        }

        .rank {
            font-family: 'JetBrains Mono', monospace;
            font-weight: 500;
            color: var(--text-muted);
            width: 50px;
        }

        .game-name {
            font-weight: 500;
        }

        .game-number {
            display: block;
            font-size: 0.8rem;
            color: var(--text-muted);
            font-family: 'JetBrains Mono', monospace;
            margin-top: 0.25rem;
        }

        .badge {
            display: inline-block;
            padding: 0.15rem 0.5rem;
            border-radius: 0.25rem;
            font-size: 0.7rem;
            font-weight: 500;
            text-transform: uppercase;
            margin-left: 0.5rem;
        }

        .badge.reordered {
            background: var(--accent-blue);
            color: var(--bg-primary);
        }

        .price {
            font-family: 'JetBrains Mono', monospace;
            font-weight: 500;
            color: var(--accent-gold);
        }

        .top-prize {
            font-family: 'JetBrains Mono', monospace;
            font-weight: 500;
        }

        .top-pct {
            font-family: 'JetBrains Mono', monospace;
            color: var(--text-secondary);
        }

        .remaining {
            font-family: 'JetBrains Mono', monospace;
            color: var(--text-secondary);
        }

        .diff {
            font-family: 'JetBrains Mono', monospace;
            font-weight: 600;
            text-align: right;
        }

        .diff.positive {
            color: var(--accent-green);
            background: var(--accent-green-dim);
            border-radius: 0.25rem;
            padding: 0.25rem 0.5rem;
        }

        .diff.negative {
            color: var(--accent-red);
            background: var(--accent-red-dim);
            border-radius: 0.25rem;
            padding: 0.25rem 0.5rem;
        }

        .diff.neutral {
            color: var(--text-muted);
        }

        footer {
            text-align: center;
            padding: 2rem 0;
            border-top: 1px solid var(--border-color);
            margin-top: 2rem;
        }

        footer p {
            color: var(--text-muted);
            font-size: 0.85rem;
            margin-bottom: 0.5rem;
        }

        footer a {
            color: var(--accent-blue);
            text-decoration: none;
        }

        footer a:hover {
            text-decoration: underline;
        }

        @media (max-width: 768px) {
            .container {
                padding: 1rem;
            }

            .logo {
                font-size: 1.75rem;
            }

            th, td {
                padding: 0.75rem 0.5rem;
                font-size: 0.85rem;
            }

            .game-number {
                display: none;
            }

            .section-header {
                flex-direction: column;
                align-items: flex-start;
                gap: 0.5rem;
            }
        }

        @media (max-width: 500px) {
            .top-pct, th:nth-child(5) {
                display: none;
            }
        }
    </style>
</head>
<body>
    <div class="container">
        <header>
            <h1 class="logo">NC Lottery Analyzer</h1>
            <p class="tagline">Find scratch-offs with the best prize differentials</p>
            <div class="update-time">Last updated: {{.UpdateTime}}</div>
        </header>

        <div class="info-box">
            <h3>&#128202; How to Read This Data</h3>
            <p><span class="highlight">Differential</span> = Top Prize % Remaining &minus; Bottom Prize % Remaining</p>
            <p><span class="positive">Positive (+)</span> = More top prizes remain proportionally &mdash; potentially better value</p>
            <p><span class="negative">Negative (&minus;)</span> = Fewer top prizes remain &mdash; the best prizes may be gone</p>
            <p style="margin-top: 0.75rem; font-style: italic;">Click any row to view full prize details on the NC Lottery website.</p>
        </div>

        <section>
            <div class="section-header">
                <h2 class="section-title"><span class="icon">&#128176;</span> Top 10 Games $10 and Up</h2>
                <span class="section-count">showing {{len .HighBand}} of {{.HighTotal}}</span>
            </div>
            <div class="table-container">
                <table>
                    <thead>
                        <tr>
                            <th>#</th>
                            <th>Game</th>
                            <th>Price</th>
                            <th>Top Prize</th>
                            <th class="top-pct">Top %</th>
                            <th style="text-align: right;">Diff</th>
                        </tr>
                    </thead>
                    <tbody>
                        {{range .HighBand}}{{template "gameRow" .}}{{end}}
                    </tbody>
                </table>
            </div>
        </section>

        <section>
            <div class="section-header">
                <h2 class="section-title"><span class="icon">&#127915;</span> Top 10 Games Under $10</h2>
                <span class="section-count">showing {{len .LowBand}} of {{.LowTotal}}</span>
            </div>
            <div class="table-container">
                <table>
                    <thead>
                        <tr>
                            <th>#</th>
                            <th>Game</th>
                            <th>Price</th>
                            <th>Top Prize</th>
                            <th class="top-pct">Top %</th>
                            <th style="text-align: right;">Diff</th>
                        </tr>
                    </thead>
                    <tbody>
                        {{range .LowBand}}{{template "gameRow" .}}{{end}}
                    </tbody>
                </table>
            </div>
        </section>

        <section>
            <div class="section-header">
                <h2 class="section-title"><span class="icon">&#127942;</span> Most Top Prizes Remaining ($5K+)</h2>
                <span class="section-count">showing {{len .TopPrizes}} of {{.TopTotal}}</span>
            </div>
            <div class="table-container">
                <table>
                    <thead>
                        <tr>
                            <th>#</th>
                            <th>Game</th>
                            <th>Price</th>
                            <th>Top Prize</th>
                            <th class="top-pct">Left</th>
                            <th style="text-align: right;">Diff</th>
                        </tr>
                    </thead>
                    <tbody>
                        {{range .TopPrizes}}{{template "topPrizeRow" .}}{{end}}
                    </tbody>
                </table>
            </div>
        </section>

        <footer>
            <p>Data sourced from <a href="https://nclottery.com/scratch-off-prizes-remaining" target="_blank">NC Education Lottery</a></p>
            <p>Updated automatically every day. For informational purposes only.</p>
            <p style="margin-top: 1rem; font-size: 0.75rem;">Lottery games are games of chance. Please play responsibly.</p>
        </footer>
    </div>
</body>
</html>
{{define "gameRow"}}
                <tr class="game-row" onclick="window.open('{{.URL}}', '_blank')">
                    <td class="rank">{{.Rank}}</td>
                    <td class="game-name">
                        {{.Name}}
                        {{if .Reordered}}<span class="badge reordered">Reordered</span>{{end}}
                        <span class="game-number">#{{.Number}}</span>
                    </td>
                    <td class="price">{{.Price}}</td>
                    <td class="top-prize">{{.TopPrize}}</td>
                    <td class="top-pct">{{.TopPct}}</td>
                    <td class="diff {{.DiffClass}}">{{.Diff}}</td>
                </tr>
{{end}}
{{define "topPrizeRow"}}
                <tr class="game-row" onclick="window.open('{{.URL}}', '_blank')">
                    <td class="rank">{{.Rank}}</td>
                    <td class="game-name">
                        {{.Name}}
                        {{if .Reordered}}<span class="badge reordered">Reordered</span>{{end}}
                        <span class="game-number">#{{.Number}}</span>
                    </td>
                    <td class="price">{{.Price}}</td>
                    <td class="top-prize">{{.TopPrize}}</td>
                    <td class="remaining">{{.TopRemaining}}</td>
                    <td class="diff {{.DiffClass}}">{{.Diff}}</td>
                </tr>
{{end}}`
